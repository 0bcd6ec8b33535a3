package decline_booking

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	syncSvc "github.com/coachwise/CW-RescheduleService/internal/service/sync"
)

// BookingReader интерфейс для чтения бронирований
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

// BookingServiceClient интерфейс клиента сервиса бронирований
type BookingServiceClient interface {
	DeclineBooking(ctx context.Context, bookingID int64, reason, idempotencyKey string) (*domain.Booking, error)
}

// Synchronizer интерфейс оптимистичного синхронизатора кеша
type Synchronizer interface {
	Run(ctx context.Context, op syncSvc.Operation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
