package compose_proposal

import (
	"context"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
)

// BookingReader интерфейс чтения бронирований
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

// AvailabilityClient интерфейс получения availability-данных коуча
type AvailabilityClient interface {
	GetCoachAvailability(ctx context.Context, req bookingservice.AvailabilityRequest) ([]domain.Slot, error)
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
