package get_reschedule_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

const (
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgBookingNotFound        = "бронирование не найдено"
	msgAccessDenied           = "доступ к бронированию запрещен"
	msgEligibilityUnavailable = "проверка возможности переноса временно недоступна"
)

type Handler struct {
	useCase CheckEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	CanReschedule bool    `json:"canReschedule"`
	ReasonCode    *string `json:"reasonCode,omitempty"`
	Role          string  `json:"role"`
}

// Handle GET /api/v1/bookings/{bookingId}/reschedule-eligibility
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

	result, err := h.useCase.Execute(r.Context(), &checkEligibility.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkEligibility.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%d/reschedule-eligibility - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkEligibility.ErrAccessDenied):
			h.logger.Warn("GET /bookings/%d/reschedule-eligibility - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkEligibility.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, checkEligibility.ErrEligibilityUnavailable):
			h.logger.Warn("GET /bookings/%d/reschedule-eligibility - Upstream unavailable", bookingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgEligibilityUnavailable)

		default:
			h.logger.Error("GET /bookings/%d/reschedule-eligibility - Failed: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &EligibilityResponse{
		CanReschedule: result.CanReschedule,
		ReasonCode:    result.ReasonCode,
		Role:          string(result.Role),
	})
}
