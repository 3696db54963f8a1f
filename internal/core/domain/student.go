package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudentStatus represents the account lifecycle state of a student.
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// Student is the identity record behind a campus card. The card itself
// carries only CardUID; everything else lives server-side.
type Student struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	RollNo        string        `json:"roll_no"`
	CardUID       string        `json:"card_uid"`
	WalletBalance int64         `json:"wallet_balance"` // In paise (smallest unit)
	Status        StudentStatus `json:"status"`
	Academic      AcademicProfile
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AcademicProfile holds filter/reporting attributes. These never feed
// policy decisions.
type AcademicProfile struct {
	Branch  string `json:"branch,omitempty"`
	Section string `json:"section,omitempty"`
	Program string `json:"program,omitempty"`
	Year    int    `json:"year,omitempty"`
}

// IsActive returns true if the student account may use campus services.
func (s *Student) IsActive() bool {
	return s.Status == StudentStatusActive
}
