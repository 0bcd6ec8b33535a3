package initiate_reschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
	syncSvc "github.com/coachwise/CW-RescheduleService/internal/service/sync"
	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

// UseCase use case первичного предложения переноса (от любой из сторон)
type UseCase struct {
	bookingReader BookingReader
	client        BookingServiceClient
	eligibility   EligibilityChecker
	synchronizer  Synchronizer
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingReader BookingReader,
	client BookingServiceClient,
	eligibility EligibilityChecker,
	synchronizer Synchronizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingReader: bookingReader,
		client:        client,
		eligibility:   eligibility,
		synchronizer:  synchronizer,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute отправляет первичное предложение переноса.
// Порядок: проверка права -> валидация слотов -> оптимистичная проекция
// статуса бронирования -> отправка в booking-сервис под синхронизатором
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiateReschedule: booking=%d, user=%d, slots=%d",
		req.BookingID, req.UserID, len(req.Slots))

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: booking and user ids must be positive", ErrInvalidInput)
	}

	booking, err := uc.getBooking(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	role, ok := booking.ActorRoleOf(req.UserID)
	if !ok {
		return nil, ErrAccessDenied
	}

	// Если pending-предложение противоположной стороны ждет действия этой роли,
	// инициировать новое нельзя - нужно отвечать
	if pending := booking.PendingRescheduleRequest(); pending != nil {
		if pendingFor, ok := pending.PendingFor(); ok && pendingFor == role {
			uc.logger.Warn("InitiateReschedule: booking=%d has pending request id=%d awaiting %s response",
				req.BookingID, pending.ID, role)
			return nil, ErrResponseRequired
		}
		// Pending-предложение собственной стороны вытесняется сервисом (superseded)
	}

	// Проверка права на перенос
	eligibilityResp, err := uc.eligibility.Execute(ctx, &checkEligibility.Request{
		BookingID: req.BookingID,
		UserID:    req.UserID,
	})
	if err != nil {
		uc.logger.Error("InitiateReschedule: eligibility check failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrEligibilityUnavailable, err)
	}
	if !eligibilityResp.CanReschedule {
		reason := "unspecified"
		if eligibilityResp.ReasonCode != nil {
			reason = *eligibilityResp.ReasonCode
		}
		uc.logger.Warn("InitiateReschedule: booking=%d not eligible, reason=%s", req.BookingID, reason)
		return nil, fmt.Errorf("%w: %s", ErrNotEligible, reason)
	}

	// Валидация слотов перед любой отправкой
	now := uc.timeProvider.Now()
	if err := domain.ValidateProposedSlots(req.Slots, now); err != nil {
		uc.logger.Warn("InitiateReschedule: slot validation failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlots, err)
	}

	var created *domain.RescheduleRequest
	pendingBookingStatus := domain.PendingBookingStatusFor(role)
	idempotencyKey := uuid.NewString()

	err = uc.synchronizer.Run(ctx, syncSvc.Operation{
		Name:         "initiate_reschedule",
		BookingID:    req.BookingID,
		SnapshotKeys: []string{querycache.BookingKey(req.BookingID), querycache.KeyNotifications},
		Optimistic: func(cache *querycache.Cache) error {
			return syncSvc.ProjectBooking(cache, req.BookingID, func(b *domain.Booking) {
				b.Status = pendingBookingStatus
				b.RescheduleRequests = append(b.RescheduleRequests, &domain.RescheduleRequest{
					ProposedBy:    role,
					ProposedSlots: req.Slots,
					Message:       req.Message,
					Status:        domain.PendingStatusFor(role),
					CreatedAt:     now,
				})
			})
		},
		Mutate: func(ctx context.Context) error {
			var mutateErr error
			created, mutateErr = uc.submit(ctx, req, role, idempotencyKey)
			return mutateErr
		},
		InvalidateOnSuccess: []string{
			querycache.BookingKey(req.BookingID),
			querycache.KeyBookings,
			querycache.KeyCoachDashboard,
			querycache.KeyNotifications,
		},
	})
	if err != nil {
		if errors.Is(err, syncSvc.ErrActionInProgress) {
			return nil, ErrActionInProgress
		}
		uc.logger.Error("InitiateReschedule: submission failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: submission failed: %v", ErrInternal, err)
	}

	uc.logger.Info("InitiateReschedule: booking=%d request id=%d created by %s",
		req.BookingID, created.ID, role)

	return &Response{
		Request:       created,
		BookingStatus: pendingBookingStatus,
		Role:          role,
	}, nil
}

// submit маршрутизирует предложение в нужную операцию booking-сервиса
func (uc *UseCase) submit(ctx context.Context, req *Request, role domain.ActorRole, idempotencyKey string) (*domain.RescheduleRequest, error) {
	if role == domain.RoleClient {
		return uc.client.RequestRescheduleByClient(ctx, req.BookingID, bookingservice.ClientRescheduleRequest{
			ProposedSlots:  bookingservice.FromDomainSlots(req.Slots),
			RequestMessage: req.Message,
		}, idempotencyKey)
	}
	return uc.client.ProposeRescheduleByCoach(ctx, req.BookingID, bookingservice.CoachRescheduleProposal{
		ProposedSlots: bookingservice.FromDomainSlots(req.Slots),
		Reason:        req.Message,
	}, idempotencyKey)
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
