package sync

import (
	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
)

// ProjectBooking применяет оптимистичную правку к закэшированному бронированию.
// Если бронирования нет в кэше, проекция молча пропускается: UI нечего обновлять
func ProjectBooking(cache *querycache.Cache, bookingID int64, apply func(*domain.Booking)) error {
	var booking domain.Booking
	ok, err := cache.GetJSON(querycache.BookingKey(bookingID), &booking)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	apply(&booking)
	return cache.SetJSON(querycache.BookingKey(bookingID), &booking)
}

// ProjectNotificationsActioned помечает закэшированные уведомления по
// бронированию как обработанные
func ProjectNotificationsActioned(cache *querycache.Cache, bookingID int64) error {
	var notifications []*domain.Notification
	ok, err := cache.GetJSON(querycache.KeyNotifications, &notifications)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for _, n := range notifications {
		if n.BookingID == bookingID && n.IsActionable() {
			n.Status = domain.NotificationActioned
		}
	}
	return cache.SetJSON(querycache.KeyNotifications, notifications)
}
