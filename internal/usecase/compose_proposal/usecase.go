package compose_proposal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
)

// UseCase use case подбора слотов-кандидатов для предложения переноса
type UseCase struct {
	bookingReader BookingReader
	availability  AvailabilityClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingReader BookingReader,
	availability AvailabilityClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingReader: bookingReader,
		availability:  availability,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// ComposeInitial подбирает первый слот-кандидат.
// Якорь - время окончания исходного бронирования; если его нет, now + 15 минут.
// При наличии availability-данных коуча предпочитается самое раннее свободное
// окно после якоря, иначе работает дефолтный алгоритм округления
func (uc *UseCase) ComposeInitial(ctx context.Context, req *ComposeRequest) (*ComposeResponse, error) {
	uc.logger.Info("ComposeInitial: booking=%d, user=%d, competing=%d, availability=%t",
		req.BookingID, req.UserID, len(req.CompetingSlots), req.UseAvailability)

	booking, err := uc.getBooking(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	anchor := uc.anchorFor(booking, now)
	duration := uc.durationFor(booking)

	if req.UseAvailability {
		availability, err := uc.fetchAvailability(ctx, booking, anchor)
		if err != nil {
			// Availability-данные вспомогательные: при их недоступности
			// откатываемся к дефолтному алгоритму
			uc.logger.Warn("ComposeInitial: availability unavailable for booking id=%d, falling back: %v",
				req.BookingID, err)
		} else if len(availability) > 0 {
			slot, exhausted := uc.composeFromAvailability(availability, anchor, now, duration, req.CompetingSlots)
			if exhausted {
				uc.logger.Warn("ComposeInitial: probe cap reached for booking id=%d, using last candidate", req.BookingID)
			}
			return &ComposeResponse{Slot: slot, ProbeExhausted: exhausted}, nil
		}
	}

	return &ComposeResponse{Slot: defaultSlot(anchor, now, duration)}, nil
}

// AddSlot добавляет следующий слот-кандидат к уже составленному предложению.
// Якорь следующего кандидата - конец предыдущего слота + 15 минут.
// При достигнутом лимите слотов операция no-op
func (uc *UseCase) AddSlot(ctx context.Context, req *AddSlotRequest) (*AddSlotResponse, error) {
	if len(req.Existing) >= domain.MaxProposedSlots {
		uc.logger.Info("AddSlot: booking=%d already has %d slots, no-op", req.BookingID, len(req.Existing))
		return &AddSlotResponse{Slots: req.Existing, Added: false}, nil
	}

	booking, err := uc.getBooking(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	duration := uc.durationFor(booking)

	var anchor time.Time
	if len(req.Existing) > 0 {
		anchor = req.Existing[len(req.Existing)-1].End.Add(domain.SlotStepMinutes * time.Minute)
	} else {
		anchor = uc.anchorFor(booking, now)
	}

	next := defaultSlot(anchor, now, duration)
	return &AddSlotResponse{
		Slots: append(append([]domain.Slot{}, req.Existing...), next),
		Added: true,
	}, nil
}

// composeFromAvailability подбирает слот по availability-окнам коуча.
// До 10 попыток: каждый конфликтующий кандидат сдвигает якорь на свой конец
// + 15 минут. Исчерпание лимита возвращает последний кандидат с предупреждением
func (uc *UseCase) composeFromAvailability(
	availability []domain.Slot,
	anchor, now time.Time,
	duration time.Duration,
	competing []domain.Slot,
) (domain.Slot, bool) {
	probeAnchor := anchor
	var last domain.Slot

	for attempt := 1; attempt <= domain.AvailabilityProbeCap; attempt++ {
		candidate, ok := earliestAvailableAfter(availability, probeAnchor, duration)
		if !ok {
			// Подходящих окон больше нет: дефолтный алгоритм от исходного якоря
			return defaultSlot(anchor, now, duration), false
		}

		last = candidate
		if candidate.Start.After(now) && !conflictsWithAny(candidate, competing) {
			return candidate, false
		}

		probeAnchor = candidate.End.Add(domain.SlotStepMinutes * time.Minute)
	}

	return last, true
}

// anchorFor определяет якорь подбора: конец исходного бронирования,
// иначе now + 15 минут
func (uc *UseCase) anchorFor(booking *domain.Booking, now time.Time) time.Time {
	if !booking.End.IsZero() {
		return booking.End
	}
	return now.Add(domain.DefaultAnchorLeadMinutes * time.Minute)
}

// durationFor возвращает длительность слота: длительность исходного бронирования
func (uc *UseCase) durationFor(booking *domain.Booking) time.Duration {
	if d := booking.Duration(); d > 0 {
		return d
	}
	return time.Hour
}

// fetchAvailability запрашивает availability-окна коуча вокруг якоря
func (uc *UseCase) fetchAvailability(ctx context.Context, booking *domain.Booking, anchor time.Time) ([]domain.Slot, error) {
	return uc.availability.GetCoachAvailability(ctx, bookingservice.AvailabilityRequest{
		CoachID:   booking.CoachID,
		BookingID: booking.ID,
		Start:     anchor,
		End:       anchor.AddDate(0, 1, 0),
		Month:     int(anchor.Month()),
		Year:      anchor.Year(),
	})
}

// getBooking читает бронирование и маппит ошибки сервиса на ошибки usecase
func (uc *UseCase) getBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	if bookingID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: booking and user ids must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingReader.GetByID(ctx, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			uc.logger.Warn("compose_proposal: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingsSvc.ErrAccessDenied):
			uc.logger.Warn("compose_proposal: access denied for user=%d to booking id=%d", userID, bookingID)
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("compose_proposal: failed to get booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
	}
	return booking, nil
}
