package notifications

import "time"

type Type string

const (
	TypeContractExpiry Type = "Contract Expiry"
	TypeMedicalExam    Type = "Medical Exam"
	TypeSafetyTraining Type = "Safety Training"
	TypeLeaveRequest   Type = "Leave Request"
	TypeDocumentExpiry Type = "Document Expiry"
	TypeOther          Type = "Other"
)

type Notification struct {
	ID         int64      `json:"id"`
	EmployeeID *int64     `json:"employeeId,omitempty"`
	Type       Type       `json:"notificationType"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	IsRead     bool       `json:"isRead"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// IsOverdue reports whether the due date has already passed. Due today
// is not overdue.
func (n Notification) IsOverdue(today time.Time) bool {
	if n.DueDate == nil {
		return false
	}
	return dateOnly(*n.DueDate).Before(dateOnly(today))
}

// CandidateEvent is one upcoming compliance deadline produced by the
// evaluator, before deduplication.
type CandidateEvent struct {
	EmployeeID    int64
	Type          Type
	DueDate       time.Time
	DaysRemaining int
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
