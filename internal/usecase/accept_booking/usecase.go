package accept_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
	syncSvc "github.com/coachwise/CW-RescheduleService/internal/service/sync"
)

// UseCase use case принятия запрошенного бронирования коучем
type UseCase struct {
	bookingReader BookingReader
	client        BookingServiceClient
	synchronizer  Synchronizer
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingReader BookingReader,
	client BookingServiceClient,
	synchronizer Synchronizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingReader: bookingReader,
		client:        client,
		synchronizer:  synchronizer,
		logger:        logger,
	}
}

// Execute принимает запрошенное бронирование.
// Accept - идемпотентное по намерению одноразовое действие: транзиентный сбой
// сервиса не должен заставлять пользователя повторять вручную, поэтому 5xx
// повторяются автоматически (до трёх попыток с секундной задержкой)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: booking and user ids must be positive", ErrInvalidInput)
	}

	booking, err := uc.getBooking(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	if role, ok := booking.ActorRoleOf(req.UserID); !ok || role != domain.RoleCoach {
		uc.logger.Warn("AcceptBooking: user=%d is not the coach of booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}
	if !booking.CanBeAccepted() {
		uc.logger.Warn("AcceptBooking: booking=%d cannot be accepted, status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotAccept
	}

	var confirmed *domain.Booking
	idempotencyKey := uuid.NewString()

	err = uc.synchronizer.Run(ctx, syncSvc.Operation{
		Name:         "accept_booking",
		BookingID:    req.BookingID,
		SnapshotKeys: []string{querycache.BookingKey(req.BookingID), querycache.KeyNotifications},
		Optimistic: func(cache *querycache.Cache) error {
			if err := syncSvc.ProjectBooking(cache, req.BookingID, func(b *domain.Booking) {
				b.Status = domain.StatusConfirmed
			}); err != nil {
				return err
			}
			return syncSvc.ProjectNotificationsActioned(cache, req.BookingID)
		},
		Mutate: func(ctx context.Context) error {
			var mutateErr error
			confirmed, mutateErr = uc.client.AcceptBooking(ctx, req.BookingID, idempotencyKey)
			return mutateErr
		},
		InvalidateOnSuccess: []string{
			querycache.BookingKey(req.BookingID),
			querycache.KeyBookings,
			querycache.KeyCoachDashboard,
			querycache.KeyNotifications,
		},
		RetryOnUnavailable: true,
	})
	if err != nil {
		if errors.Is(err, syncSvc.ErrActionInProgress) {
			return nil, ErrActionInProgress
		}
		uc.logger.Error("AcceptBooking: failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: accept failed: %v", ErrInternal, err)
	}

	uc.logger.Info("AcceptBooking: booking=%d accepted", req.BookingID)
	return &Response{Booking: confirmed}, nil
}

// getBooking читает бронирование и маппит ошибки сервиса на ошибки usecase
func (uc *UseCase) getBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := uc.bookingReader.GetByID(ctx, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingsSvc.ErrAccessDenied):
			return nil, ErrAccessDenied
		default:
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
	}
	return booking, nil
}
