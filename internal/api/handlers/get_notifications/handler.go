package get_notifications

import (
	"net/http"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

const msgAccessDenied = "доступ запрещен"

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NotificationModel HTTP модель уведомления
type NotificationModel struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// NotificationsResponse HTTP response model
type NotificationsResponse struct {
	Notifications []NotificationModel `json:"notifications"`
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	notifications, err := h.service.ListNotifications(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(notifications))
}

func fromDomain(notifications []*domain.Notification) *NotificationsResponse {
	out := make([]NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationModel{
			ID:        n.ID,
			Type:      n.Type,
			BookingID: n.BookingID,
			Status:    string(n.Status),
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return &NotificationsResponse{Notifications: out}
}
