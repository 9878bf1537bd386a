package notifications

// ShouldCreate reports whether a candidate event still needs an alert,
// given the notifications the caller considers relevant. It is a pure
// comparison on the (employee, type, due date) triple; whether read
// notifications count is the caller's policy.
func ShouldCreate(candidate CandidateEvent, existing []Notification) bool {
	for _, n := range existing {
		if n.EmployeeID == nil || *n.EmployeeID != candidate.EmployeeID {
			continue
		}
		if n.Type != candidate.Type {
			continue
		}
		if n.DueDate == nil {
			continue
		}
		if dateOnly(*n.DueDate).Equal(dateOnly(candidate.DueDate)) {
			return false
		}
	}
	return true
}
