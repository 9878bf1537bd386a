package timesheet

import (
	"math"
	"time"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
)

type TimeEntry struct {
	ID         int64              `json:"id"`
	EmployeeID int64              `json:"employeeId"`
	Date       time.Time          `json:"date"`
	CheckIn    *time.Time         `json:"checkIn,omitempty"`
	CheckOut   *time.Time         `json:"checkOut,omitempty"`
	WorkMode   employees.WorkMode `json:"workMode"`
	Notes      string             `json:"notes"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// HoursWorked returns the worked span in hours rounded to two decimal
// places, or zero while the entry is still open.
func (t TimeEntry) HoursWorked() float64 {
	if t.CheckIn == nil || t.CheckOut == nil {
		return 0
	}
	hours := t.CheckOut.Sub(*t.CheckIn).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}
