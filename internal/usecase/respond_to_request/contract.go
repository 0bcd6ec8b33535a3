package respond_to_request

import (
	"context"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	"github.com/coachwise/CW-RescheduleService/internal/service/sync"
)

// BookingReader интерфейс чтения бронирований
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	Refetch(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// BookingServiceClient интерфейс мутирующих операций booking-сервиса
type BookingServiceClient interface {
	RespondToRescheduleRequestByCoach(ctx context.Context, bookingID int64, req bookingservice.CoachRescheduleResponse, idempotencyKey string) (*domain.Booking, error)
	RespondToRescheduleRequestByClient(ctx context.Context, bookingID int64, req bookingservice.ClientRescheduleResponse, idempotencyKey string) (*domain.Booking, error)
}

// Synchronizer интерфейс синхронизатора оптимистичных обновлений
type Synchronizer interface {
	Run(ctx context.Context, op sync.Operation) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
