package get_negotiation_mode

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	"github.com/coachwise/CW-RescheduleService/internal/domain"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
	selectMode "github.com/coachwise/CW-RescheduleService/internal/usecase/select_mode"
)

const (
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgInvalidMode            = "некорректный режим переговоров"
	msgBookingNotFound        = "бронирование не найдено"
	msgAccessDenied           = "доступ к бронированию запрещен"
	msgNotEligible            = "перенос этого бронирования недоступен"
	msgEligibilityUnavailable = "проверка возможности переноса временно недоступна"
)

type Handler struct {
	bookings BookingsService
	useCase  SelectModeUseCase
	logger   Logger
}

func NewHandler(bookings BookingsService, useCase SelectModeUseCase, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		useCase:  useCase,
		logger:   logger,
	}
}

// ModeResponse HTTP response model
type ModeResponse struct {
	Mode            string `json:"mode"`
	OverrideApplied bool   `json:"overrideApplied"`
	Ambiguous       bool   `json:"ambiguous"`
}

// Handle GET /api/v1/bookings/{bookingId}/negotiation-mode
// Опциональный query-параметр mode задает явный override (переход из уведомления)
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

	var override *domain.NegotiationMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode := domain.NegotiationMode(raw)
		if !mode.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidMode)
			return
		}
		override = &mode
	}

	booking, err := h.bookings.GetByID(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsSvc.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /bookings/%d/negotiation-mode - Failed to get booking: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	role, ok := booking.ActorRoleOf(userID)
	if !ok {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &selectMode.Request{
		BookingID:     bookingID,
		UserID:        userID,
		Role:          role,
		Proposal:      booking.PendingRescheduleRequest(),
		BookingStatus: booking.Status,
		Override:      override,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectMode.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, selectMode.ErrNotEligible):
			h.logger.Warn("GET /bookings/%d/negotiation-mode - Not eligible: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgNotEligible)

		case errors.Is(err, selectMode.ErrEligibilityUnavailable):
			h.logger.Warn("GET /bookings/%d/negotiation-mode - Eligibility unavailable", bookingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgEligibilityUnavailable)

		default:
			h.logger.Error("GET /bookings/%d/negotiation-mode - Failed: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ModeResponse{
		Mode:            string(result.Mode),
		OverrideApplied: result.OverrideApplied,
		Ambiguous:       result.Ambiguous,
	})
}
