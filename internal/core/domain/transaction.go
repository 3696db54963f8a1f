package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable journal entry for a service access. Paid
// accesses carry the charged amount; free-but-logged accesses carry 0.
// Attendance taps never produce a Transaction.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Service   string    `json:"service"`
	Amount    int64     `json:"amount"` // In paise; 0 for free access
	CreatedAt time.Time `json:"created_at"`
}

// NewTransaction builds a journal entry for a service access.
func NewTransaction(studentID uuid.UUID, service string, amount int64) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		StudentID: studentID,
		Service:   NormalizeService(service),
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// IsFree reports whether this entry logged a no-charge access.
func (t *Transaction) IsFree() bool {
	return t.Amount == 0
}
