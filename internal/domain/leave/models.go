package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Type string

const (
	TypeVacation  Type = "Vacation"
	TypeSick      Type = "Sick Leave"
	TypeUnpaid    Type = "Unpaid Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
	TypeOther     Type = "Other"
)

type LeaveRequest struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employeeId"`
	LeaveType       Type       `json:"leaveType"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	DaysCount       int        `json:"daysCount"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedDate    *time.Time `json:"approvedDate,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (r LeaveRequest) IsPending() bool {
	return r.Status == StatusPending
}

// Filter narrows request listings; nil fields match everything.
type Filter struct {
	EmployeeID *int64
	Status     *Status
}

func ValidType(value string) bool {
	switch Type(value) {
	case TypeVacation, TypeSick, TypeUnpaid, TypeMaternity, TypePaternity, TypeOther:
		return true
	}
	return false
}
