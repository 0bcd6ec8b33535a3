package bookings

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// BookingServiceClient интерфейс клиента booking-сервиса
type BookingServiceClient interface {
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
