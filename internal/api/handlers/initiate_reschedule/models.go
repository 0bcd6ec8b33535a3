package initiate_reschedule

import (
	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	initiateReschedule "github.com/coachwise/CW-RescheduleService/internal/usecase/initiate_reschedule"
)

// InitiateRequest HTTP request model
type InitiateRequest struct {
	Slots   []handlers.SlotModel `json:"slots"`
	Message string               `json:"message,omitempty"`
}

// InitiateResponse HTTP response model
type InitiateResponse struct {
	Request       handlers.RescheduleRequestModel `json:"request"`
	BookingStatus string                          `json:"bookingStatus"`
	Role          string                          `json:"role"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiateReschedule.Response) *InitiateResponse {
	return &InitiateResponse{
		Request:       handlers.FromDomainRescheduleRequest(resp.Request),
		BookingStatus: string(resp.BookingStatus),
		Role:          string(resp.Role),
	}
}
