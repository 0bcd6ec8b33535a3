package accept_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	acceptBooking "github.com/coachwise/CW-RescheduleService/internal/usecase/accept_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "принять бронирование может только коуч"
	msgCannotAccept     = "бронирование нельзя принять в текущем статусе"
	msgActionInProgress = "действие по этому бронированию уже выполняется"
)

type Handler struct {
	useCase AcceptBookingUseCase
	logger  Logger
}

func NewHandler(useCase AcceptBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/accept
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

	result, err := h.useCase.Execute(r.Context(), &acceptBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/accept - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, acceptBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/accept - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, acceptBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, acceptBooking.ErrCannotAccept):
			h.logger.Warn("POST /bookings/%d/accept - Cannot accept: user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgCannotAccept)

		case errors.Is(err, acceptBooking.ErrActionInProgress):
			handlers.RespondConflict(w, msgActionInProgress)

		default:
			h.logger.Error("POST /bookings/%d/accept - Failed: user_id=%d, error=%v", bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/accept - Accepted: user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(result.Booking))
}
