package respond_reschedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	respondToRequest "github.com/coachwise/CW-RescheduleService/internal/usecase/respond_to_request"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidRequestID      = "некорректный ID запроса на перенос"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgUnknownAction         = "неизвестное действие"
	msgBookingNotFound       = "бронирование не найдено"
	msgRequestNotFound       = "запрос на перенос не найден"
	msgAccessDenied          = "доступ к бронированию запрещен"
	msgRequestNotPending     = "запрос на перенос уже разрешен"
	msgNotYourTurn           = "запрос ожидает ответа другой стороны"
	msgSlotSelectionRequired = "нужно явно выбрать один из предложенных слотов"
	msgSlotNotInProposal     = "выбранный слот не входит в предложение"
	msgDeclineNotConfirmed   = "отклонение требует явного подтверждения"
	msgInvalidCounterSlots   = "встречные слоты не прошли валидацию"
	msgRequestSuperseded     = "состояние переговоров изменилось, обновите данные"
	msgActionInProgress      = "действие по этому бронированию уже выполняется"
)

type Handler struct {
	useCase RespondUseCase
	logger  Logger
}

func NewHandler(useCase RespondUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule-requests/{requestId}/respond
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req RespondRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/reschedule-requests/%d/respond - Invalid request body: %v",
			bookingID, requestID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := req.ToUseCaseAction()
	if err != nil {
		if errors.Is(err, errUnknownAction) {
			handlers.RespondBadRequest(w, msgUnknownAction)
		} else {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &respondToRequest.Request{
		BookingID: bookingID,
		RequestID: requestID,
		UserID:    userID,
		Message:   req.Message,
		Action:    action,
	})
	if err != nil {
		h.respondUseCaseError(w, bookingID, requestID, userID, err)
		return
	}

	h.logger.Info("POST /bookings/%d/reschedule-requests/%d/respond - Resolved: user_id=%d, action=%s",
		bookingID, requestID, userID, result.Action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, bookingID, requestID, userID int64, err error) {
	switch {
	case errors.Is(err, respondToRequest.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, respondToRequest.ErrRequestNotFound):
		h.logger.Warn("respond - Request not found: booking_id=%d, request_id=%d", bookingID, requestID)
		handlers.RespondNotFound(w, msgRequestNotFound)

	case errors.Is(err, respondToRequest.ErrAccessDenied):
		h.logger.Warn("respond - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, respondToRequest.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, respondToRequest.ErrRequestNotPending):
		h.logger.Warn("respond - Request not pending: booking_id=%d, request_id=%d", bookingID, requestID)
		handlers.RespondConflict(w, msgRequestNotPending)

	case errors.Is(err, respondToRequest.ErrNotYourTurn):
		h.logger.Warn("respond - Not user's turn: booking_id=%d, request_id=%d, user_id=%d",
			bookingID, requestID, userID)
		handlers.RespondConflict(w, msgNotYourTurn)

	case errors.Is(err, respondToRequest.ErrSlotSelectionRequired):
		handlers.RespondBadRequest(w, msgSlotSelectionRequired)

	case errors.Is(err, respondToRequest.ErrSlotNotInProposal):
		handlers.RespondBadRequest(w, msgSlotNotInProposal)

	case errors.Is(err, respondToRequest.ErrDeclineNotConfirmed):
		handlers.RespondBadRequest(w, msgDeclineNotConfirmed)

	case errors.Is(err, respondToRequest.ErrInvalidCounterSlots):
		h.logger.Warn("respond - Invalid counter slots: booking_id=%d, user_id=%d, error=%v",
			bookingID, userID, err)
		handlers.RespondBadRequest(w, msgInvalidCounterSlots)

	case errors.Is(err, respondToRequest.ErrRequestSuperseded):
		h.logger.Warn("respond - Request superseded: booking_id=%d, request_id=%d", bookingID, requestID)
		handlers.RespondConflict(w, msgRequestSuperseded)

	case errors.Is(err, respondToRequest.ErrActionInProgress):
		handlers.RespondConflict(w, msgActionInProgress)

	default:
		h.logger.Error("respond - Failed: booking_id=%d, request_id=%d, user_id=%d, error=%v",
			bookingID, requestID, userID, err)
		handlers.RespondInternalError(w)
	}
}
