package respond_reschedule

import (
	"errors"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	respondToRequest "github.com/coachwise/CW-RescheduleService/internal/usecase/respond_to_request"
)

// Дискриминатор действия в теле запроса
const (
	actionApprove        = "approve"
	actionDecline        = "decline"
	actionCounterPropose = "counter_propose"
)

var errUnknownAction = errors.New("unknown action")

// RespondRequest HTTP request model.
// Action - дискриминатор, остальные поля читаются в зависимости от него
type RespondRequest struct {
	Action       string               `json:"action"`
	SelectedSlot *handlers.SlotModel  `json:"selectedSlot,omitempty"` // approve
	Confirmed    bool                 `json:"confirmed,omitempty"`    // decline
	Slots        []handlers.SlotModel `json:"slots,omitempty"`        // counter_propose
	Message      string               `json:"message,omitempty"`
}

// RespondResponse HTTP response model
type RespondResponse struct {
	Booking *handlers.BookingModel `json:"booking"`
	Role    string                 `json:"role"`
	Action  string                 `json:"action"`
}

// ToUseCaseAction конвертирует плоское HTTP тело в закрытый набор действий use case
func (r *RespondRequest) ToUseCaseAction() (respondToRequest.Action, error) {
	switch r.Action {
	case actionApprove:
		if r.SelectedSlot == nil {
			return respondToRequest.ApproveAction{}, nil
		}
		slot, err := r.SelectedSlot.ToDomainSlot()
		if err != nil {
			return nil, err
		}
		return respondToRequest.ApproveAction{SelectedSlot: &slot}, nil

	case actionDecline:
		return respondToRequest.DeclineAction{Confirmed: r.Confirmed}, nil

	case actionCounterPropose:
		slots, err := handlers.ToDomainSlots(r.Slots)
		if err != nil {
			return nil, err
		}
		return respondToRequest.CounterProposeAction{Slots: slots}, nil

	default:
		return nil, errUnknownAction
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *respondToRequest.Response) *RespondResponse {
	return &RespondResponse{
		Booking: handlers.FromDomainBooking(resp.Booking),
		Role:    string(resp.Role),
		Action:  resp.Action,
	}
}
