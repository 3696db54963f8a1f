package domain

// AccessReason explains an access decision in a machine-readable way.
type AccessReason string

const (
	ReasonAccountInactive     AccessReason = "ACCOUNT_INACTIVE"
	ReasonInsufficientBalance AccessReason = "INSUFFICIENT_BALANCE"
	ReasonPaymentApproved     AccessReason = "PAYMENT_APPROVED"
	ReasonAccessGranted       AccessReason = "ACCESS_GRANTED"
)

// Message returns the display string shown to the tapping student.
func (r AccessReason) Message() string {
	switch r {
	case ReasonAccountInactive:
		return "Student account is not active"
	case ReasonInsufficientBalance:
		return "Insufficient Balance"
	case ReasonPaymentApproved:
		return "Payment Approved"
	case ReasonAccessGranted:
		return "Access Granted"
	}
	return string(r)
}

// AccessDecision is the result of evaluating a student against a policy.
type AccessDecision struct {
	Allowed bool
	Reason  AccessReason
}

// EvaluateAccess decides whether a student may use a service under a
// policy. Rules apply in strict order, first match wins:
//
//  1. inactive account -> deny
//  2. payment required and balance below cost -> deny
//  3. otherwise allow
//
// The balance check here is advisory: the Ledger re-checks atomically at
// debit time against the stored balance.
func EvaluateAccess(student *Student, policy *Policy) AccessDecision {
	if !student.IsActive() {
		return AccessDecision{Allowed: false, Reason: ReasonAccountInactive}
	}
	if policy.RequiresPayment && student.WalletBalance < policy.Cost {
		return AccessDecision{Allowed: false, Reason: ReasonInsufficientBalance}
	}
	if policy.RequiresPayment {
		return AccessDecision{Allowed: true, Reason: ReasonPaymentApproved}
	}
	return AccessDecision{Allowed: true, Reason: ReasonAccessGranted}
}
