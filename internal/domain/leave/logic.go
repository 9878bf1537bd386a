package leave

import "errors"

var (
	ErrInvalidRange = errors.New("end date before start date")
	ErrInvalidDays  = errors.New("day count must be positive")
	ErrInvalidType  = errors.New("unknown leave type")
)

// Validate checks a request before submission. The day count is taken
// as supplied by the caller and never recomputed here.
func Validate(r LeaveRequest) error {
	if r.EndDate.Before(r.StartDate) {
		return ErrInvalidRange
	}
	if r.DaysCount <= 0 {
		return ErrInvalidDays
	}
	if !ValidType(string(r.LeaveType)) {
		return ErrInvalidType
	}
	return nil
}
