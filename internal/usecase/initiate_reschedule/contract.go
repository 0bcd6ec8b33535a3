package initiate_reschedule

import (
	"context"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	"github.com/coachwise/CW-RescheduleService/internal/service/sync"
	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

// BookingReader интерфейс чтения бронирований
type BookingReader interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

// BookingServiceClient интерфейс мутирующих операций booking-сервиса
type BookingServiceClient interface {
	RequestRescheduleByClient(ctx context.Context, bookingID int64, req bookingservice.ClientRescheduleRequest, idempotencyKey string) (*domain.RescheduleRequest, error)
	ProposeRescheduleByCoach(ctx context.Context, bookingID int64, req bookingservice.CoachRescheduleProposal, idempotencyKey string) (*domain.RescheduleRequest, error)
}

// EligibilityChecker интерфейс проверки права на перенос
type EligibilityChecker interface {
	Execute(ctx context.Context, req *checkEligibility.Request) (*checkEligibility.Response, error)
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
