package domain

import "strings"

// Canonical service names. Any other name is looked up against the
// policies table and, failing that, denied as an unknown service.
const (
	ServiceAttendance = "attendance"
	ServiceLibrary    = "library"
	ServiceMess       = "mess"
	ServiceTransport  = "transport"
)

// Policy is the access rule attached to a service: what it costs and
// whether the cost is actually charged.
type Policy struct {
	Service         string `json:"service"`
	Cost            int64  `json:"cost"` // In paise (smallest unit)
	RequiresPayment bool   `json:"requires_payment"`
}

// defaultPolicies is the built-in fallback table used when the policies
// store has no row for a canonical service or is unavailable.
var defaultPolicies = map[string]Policy{
	ServiceAttendance: {Service: ServiceAttendance, Cost: 0, RequiresPayment: false},
	ServiceLibrary:    {Service: ServiceLibrary, Cost: 0, RequiresPayment: false},
	ServiceMess:       {Service: ServiceMess, Cost: 5000, RequiresPayment: true},
	ServiceTransport:  {Service: ServiceTransport, Cost: 2000, RequiresPayment: true},
}

// DefaultPolicy returns the built-in policy for a service, or nil if the
// service is not one of the canonical four.
func DefaultPolicy(service string) *Policy {
	p, ok := defaultPolicies[NormalizeService(service)]
	if !ok {
		return nil
	}
	return &p
}

// DefaultPolicies returns the built-in policy table in a stable order.
func DefaultPolicies() []Policy {
	return []Policy{
		defaultPolicies[ServiceAttendance],
		defaultPolicies[ServiceLibrary],
		defaultPolicies[ServiceMess],
		defaultPolicies[ServiceTransport],
	}
}

// NormalizeService canonicalizes a service name for lookups.
func NormalizeService(service string) string {
	return strings.ToLower(strings.TrimSpace(service))
}

// ServiceLabel returns the display form of a service name ("mess" -> "Mess").
func ServiceLabel(service string) string {
	s := NormalizeService(service)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsAttendance reports whether a tap targets the attendance path, which
// bypasses all wallet logic.
func IsAttendance(service string) bool {
	return NormalizeService(service) == ServiceAttendance
}
