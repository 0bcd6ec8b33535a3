package get_notifications

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

type NotificationsService interface {
	ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
