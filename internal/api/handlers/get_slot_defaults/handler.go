package get_slot_defaults

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	composeProposal "github.com/coachwise/CW-RescheduleService/internal/usecase/compose_proposal"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotFormat  = "некорректный формат слота, ожидается RFC3339"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "доступ к бронированию запрещен"
)

type Handler struct {
	useCase ComposeProposalUseCase
	logger  Logger
}

func NewHandler(useCase ComposeProposalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCompose POST /api/v1/bookings/{bookingId}/slot-defaults
func (h *Handler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	bookingID, userID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	var req ComposeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/slot-defaults - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	competing, err := handlers.ToDomainSlots(req.CompetingSlots)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotFormat)
		return
	}

	result, err := h.useCase.ComposeInitial(r.Context(), &composeProposal.ComposeRequest{
		BookingID:       bookingID,
		UserID:          userID,
		CompetingSlots:  competing,
		UseAvailability: req.UseAvailability,
	})
	if err != nil {
		h.respondUseCaseError(w, bookingID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ComposeSlotResponse{
		Slot:           handlers.FromDomainSlot(result.Slot),
		ProbeExhausted: result.ProbeExhausted,
	})
}

// HandleAddSlot POST /api/v1/bookings/{bookingId}/slot-defaults/next
func (h *Handler) HandleAddSlot(w http.ResponseWriter, r *http.Request) {
	bookingID, userID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	var req AddSlotHTTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/slot-defaults/next - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	existing, err := handlers.ToDomainSlots(req.Slots)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotFormat)
		return
	}

	result, err := h.useCase.AddSlot(r.Context(), &composeProposal.AddSlotRequest{
		BookingID: bookingID,
		UserID:    userID,
		Existing:  existing,
	})
	if err != nil {
		h.respondUseCaseError(w, bookingID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AddSlotHTTPResponse{
		Slots: handlers.FromDomainSlots(result.Slots),
		Added: result.Added,
	})
}

func (h *Handler) parseIDs(w http.ResponseWriter, r *http.Request) (bookingID, userID int64, ok bool) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return 0, 0, false
	}

	userID, found := middleware.UserIDFromContext(r.Context())
	if !found {
		handlers.RespondForbidden(w, msgAccessDenied)
		return 0, 0, false
	}
	return bookingID, userID, true
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, bookingID, userID int64, err error) {
	switch {
	case errors.Is(err, composeProposal.ErrBookingNotFound):
		h.logger.Warn("slot-defaults - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, composeProposal.ErrAccessDenied):
		h.logger.Warn("slot-defaults - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, composeProposal.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("slot-defaults - Failed: booking_id=%d, user_id=%d, error=%v", bookingID, userID, err)
		handlers.RespondInternalError(w)
	}
}
