package decline_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	declineBooking "github.com/coachwise/CW-RescheduleService/internal/usecase/decline_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "отклонить бронирование может только коуч"
	msgCannotDecline      = "бронирование нельзя отклонить в текущем статусе"
	msgActionInProgress   = "действие по этому бронированию уже выполняется"
)

type Handler struct {
	useCase DeclineBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeclineBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DeclineRequest HTTP request model
type DeclineRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Handle POST /api/v1/bookings/{bookingId}/decline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	// Тело опционально: decline без причины допустим
	var req DeclineRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /bookings/%d/decline - Invalid request body: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &declineBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, declineBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/decline - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, declineBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/decline - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, declineBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, declineBooking.ErrCannotDecline):
			h.logger.Warn("POST /bookings/%d/decline - Cannot decline: user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgCannotDecline)

		case errors.Is(err, declineBooking.ErrActionInProgress):
			handlers.RespondConflict(w, msgActionInProgress)

		default:
			h.logger.Error("POST /bookings/%d/decline - Failed: user_id=%d, error=%v", bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/decline - Declined: user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(result.Booking))
}
