package check_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
)

// UseCase use case проверки права на перенос бронирования
type UseCase struct {
	bookingReader BookingReader
	client        BookingServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingReader BookingReader,
	client BookingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingReader: bookingReader,
		client:        client,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет проверку права на перенос.
// Локальный pre-filter (будущее начало + allow-list статусов) отсекает заведомо
// неподходящие бронирования, но положительный pre-filter не достаточен:
// окончательное слово за booking-сервисом (лимиты переносов, close-to-start и т.д.)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckEligibility: booking=%d, user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: booking and user ids must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingReader.GetByID(ctx, req.BookingID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			uc.logger.Warn("CheckEligibility: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingsSvc.ErrAccessDenied):
			uc.logger.Warn("CheckEligibility: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("CheckEligibility: failed to get booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
	}

	role, ok := booking.ActorRoleOf(req.UserID)
	if !ok {
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	// Локальный pre-filter: прошедшие бронирования и статусы вне allow-list
	// отклоняются без похода в сеть
	if !booking.Start.After(now) {
		uc.logger.Info("CheckEligibility: booking id=%d already started", req.BookingID)
		result := domain.Denied(domain.ReasonBookingInPast)
		return &Response{CanReschedule: false, ReasonCode: result.ReasonCode, Role: role}, nil
	}
	if !booking.IsReschedulableStatus() {
		uc.logger.Info("CheckEligibility: booking id=%d status=%s is not reschedulable", req.BookingID, booking.Status)
		result := domain.Denied(domain.ReasonNotReschedulableStatus)
		return &Response{CanReschedule: false, ReasonCode: result.ReasonCode, Role: role}, nil
	}

	// Pre-filter пройден, но это необходимое, а не достаточное условие:
	// переспрашиваем booking-сервис
	result, err := uc.client.CheckRescheduleEligibility(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("CheckEligibility: upstream check failed for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrEligibilityUnavailable, err)
	}

	if !result.CanReschedule && result.ReasonCode != nil {
		uc.logger.Info("CheckEligibility: booking id=%d denied, reason=%s", req.BookingID, *result.ReasonCode)
	} else {
		uc.logger.Info("CheckEligibility: booking id=%d eligible for user=%d", req.BookingID, req.UserID)
	}

	return &Response{
		CanReschedule: result.CanReschedule,
		ReasonCode:    result.ReasonCode,
		Role:          role,
	}, nil
}
