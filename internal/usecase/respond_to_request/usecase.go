package respond_to_request

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
)

// UseCase use case ответа на pending-предложение переноса
type UseCase struct {
	bookingReader BookingReader
	client        BookingServiceClient
	synchronizer  Synchronizer
	timeProvider  TimeProvider
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
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute разрешает ответ на pending-предложение: approve / decline / counter.
// Леджер строго пошаговый: отвечать может только та роль, чьего действия ждет
// запрос. Успешный ответ терминально закрывает запрос на стороне сервиса,
// локальные кэши инвалидируются для подтягивания авторитетных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 || req.RequestID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: booking, request and user ids must be positive", ErrInvalidInput)
	}
	if req.Action == nil {
		return nil, fmt.Errorf("%w: action is required", ErrInvalidInput)
	}

	uc.logger.Info("RespondToRequest: booking=%d, request=%d, user=%d, action=%s",
		req.BookingID, req.RequestID, req.UserID, req.Action.actionName())

	booking, err := uc.getBooking(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	role, ok := booking.ActorRoleOf(req.UserID)
	if !ok {
		return nil, ErrAccessDenied
	}

	proposal := booking.FindRescheduleRequest(req.RequestID)
	if proposal == nil {
		uc.logger.Warn("RespondToRequest: request id=%d not found in booking=%d ledger", req.RequestID, req.BookingID)
		return nil, ErrRequestNotFound
	}
	if !proposal.IsPending() {
		uc.logger.Warn("RespondToRequest: request id=%d is terminal (status=%s)", req.RequestID, proposal.Status)
		return nil, ErrRequestNotPending
	}
	if pendingFor, ok := proposal.PendingFor(); !ok || pendingFor != role {
		uc.logger.Warn("RespondToRequest: request id=%d pending for %s, but %s responded",
			req.RequestID, proposal.Status, role)
		return nil, ErrNotYourTurn
	}

	resolved, err := uc.resolveAction(req, proposal, booking)
	if err != nil {
		return nil, err
	}

	var confirmed *domain.Booking
	idempotencyKey := uuid.NewString()

	err = uc.synchronizer.Run(ctx, syncSvc.Operation{
		Name:         "respond_" + resolved.name,
		BookingID:    req.BookingID,
		SnapshotKeys: []string{querycache.BookingKey(req.BookingID), querycache.KeyNotifications},
		Optimistic: func(cache *querycache.Cache) error {
			if err := syncSvc.ProjectBooking(cache, req.BookingID, resolved.project); err != nil {
				return err
			}
			return syncSvc.ProjectNotificationsActioned(cache, req.BookingID)
		},
		Mutate: func(ctx context.Context) error {
			var mutateErr error
			confirmed, mutateErr = uc.submit(ctx, req, role, resolved, idempotencyKey)
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
		return nil, uc.mapSubmissionError(ctx, req, err)
	}

	uc.logger.Info("RespondToRequest: booking=%d request=%d resolved with %s by %s",
		req.BookingID, req.RequestID, resolved.name, role)

	return &Response{Booking: confirmed, Role: role, Action: resolved.name}, nil
}

// resolvedAction провалидированное действие: имя для транспорта, выбранный слот
// или контр-слоты и оптимистичная проекция состояния бронирования
type resolvedAction struct {
	name         string
	selectedSlot *domain.Slot
	counterSlots []domain.Slot
	project      func(*domain.Booking)
}

// resolveAction валидирует вариант действия против pending-предложения
func (uc *UseCase) resolveAction(req *Request, proposal *domain.RescheduleRequest, booking *domain.Booking) (*resolvedAction, error) {
	requestID := req.RequestID
	role, _ := booking.ActorRoleOf(req.UserID)

	switch action := req.Action.(type) {
	case ApproveAction:
		selected := action.SelectedSlot
		if selected == nil {
			// Single-slot shortcut: единственный слот выбирается автоматически,
			// многослотовое предложение требует явного выбора
			if len(proposal.ProposedSlots) != 1 {
				uc.logger.Warn("RespondToRequest: approve without selection for %d-slot request id=%d",
					len(proposal.ProposedSlots), requestID)
				return nil, ErrSlotSelectionRequired
			}
			selected = &proposal.ProposedSlots[0]
		} else if !proposal.HasSlot(*selected) {
			uc.logger.Warn("RespondToRequest: selected slot not in request id=%d", requestID)
			return nil, ErrSlotNotInProposal
		}

		slot := *selected
		return &resolvedAction{
			name:         bookingservice.ActionApprove,
			selectedSlot: &slot,
			project: func(b *domain.Booking) {
				b.Status = domain.StatusConfirmed
				b.Start = slot.Start
				b.End = slot.End
				if r := b.FindRescheduleRequest(requestID); r != nil {
					r.Status = domain.RescheduleApproved
				}
			},
		}, nil

	case DeclineAction:
		if !action.Confirmed {
			return nil, ErrDeclineNotConfirmed
		}
		return &resolvedAction{
			name: bookingservice.ActionDecline,
			project: func(b *domain.Booking) {
				// Исходное время бронирования остается авторитетным
				b.Status = domain.StatusConfirmed
				if r := b.FindRescheduleRequest(requestID); r != nil {
					r.Status = domain.RescheduleDeclined
				}
			},
		}, nil

	case CounterProposeAction:
		now := uc.timeProvider.Now()
		if err := domain.ValidateProposedSlots(action.Slots, now); err != nil {
			uc.logger.Warn("RespondToRequest: counter slot validation failed for request id=%d: %v", requestID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidCounterSlots, err)
		}

		counterSlots := action.Slots
		message := req.Message
		return &resolvedAction{
			name:         bookingservice.ActionCounterPropose,
			counterSlots: counterSlots,
			project: func(b *domain.Booking) {
				if r := b.FindRescheduleRequest(requestID); r != nil {
					r.Status = domain.RescheduleSuperseded
				}
				b.Status = domain.PendingBookingStatusFor(role)
				b.RescheduleRequests = append(b.RescheduleRequests, &domain.RescheduleRequest{
					ProposedBy:    role,
					ProposedSlots: counterSlots,
					Message:       message,
					Status:        domain.PendingStatusFor(role),
					CreatedAt:     now,
				})
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown action type %T", ErrInvalidInput, req.Action)
	}
}

// submit маршрутизирует ответ в нужную операцию booking-сервиса
func (uc *UseCase) submit(ctx context.Context, req *Request, role domain.ActorRole, resolved *resolvedAction, idempotencyKey string) (*domain.Booking, error) {
	var selectedTime *bookingservice.SlotModel
	if resolved.selectedSlot != nil {
		model := bookingservice.FromDomainSlot(*resolved.selectedSlot)
		selectedTime = &model
	}

	if role == domain.RoleCoach {
		return uc.client.RespondToRescheduleRequestByCoach(ctx, req.BookingID, bookingservice.CoachRescheduleResponse{
			RequestID:          req.RequestID,
			Action:             resolved.name,
			SelectedTime:       selectedTime,
			CoachMessage:       req.Message,
			CoachProposedTimes: bookingservice.FromDomainSlots(resolved.counterSlots),
		}, idempotencyKey)
	}
	return uc.client.RespondToRescheduleRequestByClient(ctx, req.BookingID, bookingservice.ClientRescheduleResponse{
		RequestID:     req.RequestID,
		Action:        resolved.name,
		SelectedTime:  selectedTime,
		ClientMessage: req.Message,
		ProposedSlots: bookingservice.FromDomainSlots(resolved.counterSlots),
	}, idempotencyKey)
}

// mapSubmissionError маппит ошибки отправки на ошибки usecase.
// Конфликт (запрос уже вытеснен) - recoverable: кэш принудительно
// перечитывается, чтобы селектор режима разрешился по свежему леджеру
func (uc *UseCase) mapSubmissionError(ctx context.Context, req *Request, err error) error {
	switch {
	case errors.Is(err, syncSvc.ErrActionInProgress):
		return ErrActionInProgress
	case errors.Is(err, bookingservice.ErrRequestSuperseded):
		uc.logger.Warn("RespondToRequest: request id=%d superseded, forcing refetch of booking=%d",
			req.RequestID, req.BookingID)
		if _, refetchErr := uc.bookingReader.Refetch(ctx, req.BookingID); refetchErr != nil {
			uc.logger.Error("RespondToRequest: forced refetch failed for booking=%d: %v", req.BookingID, refetchErr)
		}
		return ErrRequestSuperseded
	default:
		uc.logger.Error("RespondToRequest: submission failed for booking=%d request=%d: %v",
			req.BookingID, req.RequestID, err)
		return fmt.Errorf("%w: submission failed: %v", ErrInternal, err)
	}
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
