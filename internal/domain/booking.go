package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested                      BookingStatus = "requested"
	StatusPendingPayment                 BookingStatus = "pending_payment"
	StatusConfirmed                      BookingStatus = "confirmed"
	StatusPendingRescheduleClientRequest BookingStatus = "pending_reschedule_client_request"
	StatusPendingRescheduleCoachRequest  BookingStatus = "pending_reschedule_coach_request"
	StatusDeclined                       BookingStatus = "declined"
	StatusCompleted                      BookingStatus = "completed"
	StatusCancelled                      BookingStatus = "cancelled"
)

// ActorRole represents which side of the booking a user is on
type ActorRole string

const (
	RoleCoach  ActorRole = "coach"
	RoleClient ActorRole = "client"
)

// Other возвращает противоположную сторону переговоров
func (r ActorRole) Other() ActorRole {
	if r == RoleCoach {
		return RoleClient
	}
	return RoleCoach
}

// IsValid returns true if the role is one of the known roles
func (r ActorRole) IsValid() bool {
	return r == RoleCoach || r == RoleClient
}

// Booking represents a coaching session between a coach and a client.
// ClientID is nil for unclaimed group/webinar sessions.
// RescheduleRequests is the append-only negotiation ledger, ordered by creation time.
type Booking struct {
	ID            int64
	CoachID       int64
	ClientID      *int64
	SessionTypeID int64
	Start         time.Time
	End           time.Time
	Status        BookingStatus

	RescheduleRequests []*RescheduleRequest

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the booked session length in minutes
func (b *Booking) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// Duration returns the booked session length
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// IsReschedulableStatus returns true if the booking status is in the
// reschedule allow-list. This is a necessary but not sufficient condition:
// the booking service re-verifies eligibility server-side.
func (b *Booking) IsReschedulableStatus() bool {
	switch b.Status {
	case StatusConfirmed, StatusPendingPayment, StatusRequested,
		StatusPendingRescheduleClientRequest, StatusPendingRescheduleCoachRequest:
		return true
	default:
		return false
	}
}

// CanBeAccepted returns true if the booking is awaiting coach confirmation
func (b *Booking) CanBeAccepted() bool {
	return b.Status == StatusRequested
}

// CanBeDeclined returns true if the booking can still be declined by the coach
func (b *Booking) CanBeDeclined() bool {
	return b.Status == StatusRequested || b.Status == StatusPendingPayment
}

// ActorRoleOf определяет роль пользователя в бронировании
// Возвращает false, если пользователь не является ни коучем, ни клиентом
func (b *Booking) ActorRoleOf(userID int64) (ActorRole, bool) {
	if b.CoachID == userID {
		return RoleCoach, true
	}
	if b.ClientID != nil && *b.ClientID == userID {
		return RoleClient, true
	}
	return "", false
}

// PendingRescheduleRequest возвращает единственный pending-запрос в леджере
// Инвариант леджера: не более одного запроса в статусе pending_* одновременно,
// переговоры строго пошаговые (новое предложение вытесняет предыдущее)
func (b *Booking) PendingRescheduleRequest() *RescheduleRequest {
	for i := len(b.RescheduleRequests) - 1; i >= 0; i-- {
		if b.RescheduleRequests[i].IsPending() {
			return b.RescheduleRequests[i]
		}
	}
	return nil
}

// FindRescheduleRequest ищет запрос в леджере по ID
func (b *Booking) FindRescheduleRequest(requestID int64) *RescheduleRequest {
	for _, req := range b.RescheduleRequests {
		if req.ID == requestID {
			return req
		}
	}
	return nil
}
