package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	bookingClient "github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
)

// Service сервис чтения бронирований и уведомлений через query-кэш
// Все чтения идут по схеме cache-aside: сначала кэш, потом booking-сервис
type Service struct {
	client BookingServiceClient
	cache  *querycache.Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingServiceClient, cache *querycache.Cache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь должен быть коучем или клиентом бронирования
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	if bookingID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: booking and user ids must be positive", ErrInvalidInput)
	}

	var cached domain.Booking
	hit, err := s.cache.GetJSON(querycache.BookingKey(bookingID), &cached)
	if err != nil {
		// Испорченная запись кэша не фатальна, перечитываем из сервиса
		s.logger.Warn("GetByID: corrupted cache entry for booking id=%d: %v", bookingID, err)
		s.cache.Delete(querycache.BookingKey(bookingID))
		hit = false
	}
	if hit {
		if _, ok := cached.ActorRoleOf(userID); !ok {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
			return nil, ErrAccessDenied
		}
		return &cached, nil
	}

	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		// fetch оставляет 403 клиента как есть ради PrefetchSummaries;
		// наружу отдаем сервисную ошибку
		if errors.Is(err, bookingClient.ErrAccessDenied) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	if _, ok := booking.ActorRoleOf(userID); !ok {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// Refetch принудительно перечитывает бронирование из booking-сервиса
// Используется после конфликта, когда состояние переговоров ушло вперед
func (s *Service) Refetch(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	s.cache.Delete(querycache.BookingKey(bookingID))
	return s.fetch(ctx, bookingID)
}

// PrefetchSummaries спекулятивно прогревает кэш сводок бронирований.
// 403 здесь - нормальное следствие permission-scoped видимости, а не сбой:
// такие ошибки подавляются без логирования, чтобы не шуметь
func (s *Service) PrefetchSummaries(ctx context.Context, bookingIDs []int64) {
	for _, id := range bookingIDs {
		if _, hit := s.cache.Get(querycache.BookingKey(id)); hit {
			continue
		}
		if _, err := s.fetch(ctx, id); err != nil {
			if errors.Is(err, bookingClient.ErrAccessDenied) {
				continue
			}
			s.logger.Warn("PrefetchSummaries: failed to prefetch booking id=%d: %v", id, err)
		}
	}
}

// ListNotifications получает уведомления пользователя и кладет список в кэш
func (s *Service) ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	var cached []*domain.Notification
	hit, err := s.cache.GetJSON(querycache.KeyNotifications, &cached)
	if err != nil {
		s.logger.Warn("ListNotifications: corrupted cache entry: %v", err)
		s.cache.Delete(querycache.KeyNotifications)
		hit = false
	}
	if hit {
		return cached, nil
	}

	notifications, err := s.client.ListNotifications(ctx, userID)
	if err != nil {
		s.logger.Error("ListNotifications: failed to fetch notifications for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListNotifications - client error: %v", ErrInternal, err)
	}

	if err := s.cache.SetJSON(querycache.KeyNotifications, notifications); err != nil {
		s.logger.Warn("ListNotifications: failed to cache notifications: %v", err)
	}

	s.logger.Info("ListNotifications: fetched %d notifications for user=%d", len(notifications), userID)
	return notifications, nil
}

// fetch читает бронирование из booking-сервиса и кэширует его
func (s *Service) fetch(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.client.GetBooking(ctx, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrBookingNotFound):
			s.logger.Warn("fetch: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingClient.ErrAccessDenied):
			return nil, err
		default:
			s.logger.Error("fetch: client error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: fetch - client error: %v", ErrInternal, err)
		}
	}

	if err := s.cache.SetJSON(querycache.BookingKey(bookingID), booking); err != nil {
		s.logger.Warn("fetch: failed to cache booking id=%d: %v", bookingID, err)
	}

	return booking, nil
}
