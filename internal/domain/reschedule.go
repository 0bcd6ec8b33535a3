package domain

import "time"

// RescheduleStatus represents the lifecycle state of a reschedule request
type RescheduleStatus string

const (
	ReschedulePendingCoachAction  RescheduleStatus = "pending_coach_action"
	ReschedulePendingClientAction RescheduleStatus = "pending_client_action"
	RescheduleApproved            RescheduleStatus = "approved"
	RescheduleDeclined            RescheduleStatus = "declined"
	RescheduleSuperseded          RescheduleStatus = "superseded"
)

// RescheduleRequest is one round of a reschedule negotiation.
// Born pending_*_action, dies approved, declined, or superseded by a newer
// request in the same ledger. Never deleted.
type RescheduleRequest struct {
	ID            int64
	ProposedBy    ActorRole
	ProposedSlots []Slot // 1..3 candidate slots, ordered
	Message       string
	Status        RescheduleStatus
	CreatedAt     time.Time
}

// IsPending returns true while the request awaits a response
func (r *RescheduleRequest) IsPending() bool {
	return r.Status == ReschedulePendingCoachAction || r.Status == ReschedulePendingClientAction
}

// IsTerminal returns true once the request has been resolved or superseded
func (r *RescheduleRequest) IsTerminal() bool {
	return r.Status == RescheduleApproved || r.Status == RescheduleDeclined || r.Status == RescheduleSuperseded
}

// PendingFor возвращает роль, которая должна ответить на запрос
// Возвращает false для терминальных статусов
func (r *RescheduleRequest) PendingFor() (ActorRole, bool) {
	switch r.Status {
	case ReschedulePendingCoachAction:
		return RoleCoach, true
	case ReschedulePendingClientAction:
		return RoleClient, true
	default:
		return "", false
	}
}

// HasSlot проверяет, что слот входит в список предложенных
func (r *RescheduleRequest) HasSlot(s Slot) bool {
	for _, candidate := range r.ProposedSlots {
		if candidate.Equal(s) {
			return true
		}
	}
	return false
}

// PendingStatusFor возвращает pending-статус запроса, созданного указанной ролью:
// предложение коуча ждет действия клиента и наоборот
func PendingStatusFor(proposedBy ActorRole) RescheduleStatus {
	if proposedBy == RoleCoach {
		return ReschedulePendingClientAction
	}
	return ReschedulePendingCoachAction
}

// PendingBookingStatusFor возвращает статус бронирования, отражающий
// наличие pending-запроса от указанной роли
func PendingBookingStatusFor(proposedBy ActorRole) BookingStatus {
	if proposedBy == RoleCoach {
		return StatusPendingRescheduleCoachRequest
	}
	return StatusPendingRescheduleClientRequest
}
