package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is an immutable presence event. It has no relationship
// to the wallet or the transaction journal.
type AttendanceRecord struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Context   string    `json:"context"` // e.g. "general", "lab", a course code
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAttendanceRecord builds a presence event for a student. An empty
// context defaults to "general".
func NewAttendanceRecord(studentID uuid.UUID, context string) *AttendanceRecord {
	if context == "" {
		context = "general"
	}
	now := time.Now().UTC()
	return &AttendanceRecord{
		ID:        uuid.New(),
		StudentID: studentID,
		Context:   context,
		Date:      now.Truncate(24 * time.Hour),
		CreatedAt: now,
	}
}
