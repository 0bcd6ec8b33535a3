package check_eligibility

import (
	"context"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// BookingReader интерфейс чтения бронирований (cache-aside, с проверкой доступа)
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

// BookingServiceClient интерфейс клиента booking-сервиса
type BookingServiceClient interface {
	CheckRescheduleEligibility(ctx context.Context, bookingID int64) (*domain.EligibilityResult, error)
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
