package accept_booking

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/service/sync"
)

// BookingReader интерфейс чтения бронирований
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

// BookingServiceClient интерфейс мутирующих операций booking-сервиса
type BookingServiceClient interface {
	AcceptBooking(ctx context.Context, bookingID int64, idempotencyKey string) (*domain.Booking, error)
}

// Synchronizer интерфейс синхронизатора оптимистичных обновлений
type Synchronizer interface {
	Run(ctx context.Context, op sync.Operation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
