package domain

// Eligibility reason codes. Fixed taxonomy shared with the booking service;
// the local codes cover the client-side pre-filter.
const (
	ReasonTooCloseToStart         = "too_close_to_start_time"
	ReasonRescheduleLimitReached  = "reschedule_limit_reached"
	ReasonNotReschedulableStatus  = "booking_not_in_reschedulable_status"
	ReasonBookingInPast           = "booking_start_in_past"
)

// EligibilityResult is the transient answer of the eligibility check.
// Not persisted.
type EligibilityResult struct {
	CanReschedule bool
	ReasonCode    *string
}

// Denied строит отрицательный результат с кодом причины
func Denied(reasonCode string) EligibilityResult {
	return EligibilityResult{CanReschedule: false, ReasonCode: &reasonCode}
}

// Eligible строит положительный результат
func Eligible() EligibilityResult {
	return EligibilityResult{CanReschedule: true}
}
