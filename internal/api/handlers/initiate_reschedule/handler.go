package initiate_reschedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	initiateReschedule "github.com/coachwise/CW-RescheduleService/internal/usecase/initiate_reschedule"
)

const (
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidSlotFormat      = "некорректный формат слота, ожидается RFC3339"
	msgInvalidSlots           = "предложенные слоты не прошли валидацию"
	msgBookingNotFound        = "бронирование не найдено"
	msgAccessDenied           = "доступ к бронированию запрещен"
	msgNotEligible            = "перенос этого бронирования недоступен"
	msgEligibilityUnavailable = "проверка возможности переноса временно недоступна"
	msgResponseRequired       = "сначала нужно ответить на действующее предложение"
	msgActionInProgress       = "действие по этому бронированию уже выполняется"
)

type Handler struct {
	useCase InitiateRescheduleUseCase
	logger  Logger
}

func NewHandler(useCase InitiateRescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule-requests
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

	var req InitiateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/reschedule-requests - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slots, err := handlers.ToDomainSlots(req.Slots)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initiateReschedule.Request{
		BookingID: bookingID,
		UserID:    userID,
		Slots:     slots,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, initiateReschedule.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, initiateReschedule.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, initiateReschedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, initiateReschedule.ErrInvalidSlots):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Invalid slots: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, initiateReschedule.ErrNotEligible):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Not eligible: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgNotEligible)

		case errors.Is(err, initiateReschedule.ErrEligibilityUnavailable):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Eligibility unavailable", bookingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgEligibilityUnavailable)

		case errors.Is(err, initiateReschedule.ErrResponseRequired):
			h.logger.Warn("POST /bookings/%d/reschedule-requests - Response required first: user_id=%d",
				bookingID, userID)
			handlers.RespondConflict(w, msgResponseRequired)

		case errors.Is(err, initiateReschedule.ErrActionInProgress):
			handlers.RespondConflict(w, msgActionInProgress)

		default:
			h.logger.Error("POST /bookings/%d/reschedule-requests - Failed: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/reschedule-requests - Created: user_id=%d, request_id=%d",
		bookingID, userID, result.Request.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
