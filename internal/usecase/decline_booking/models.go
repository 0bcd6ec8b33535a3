package decline_booking

import (
	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// Request модель запроса отклонения бронирования коучем
type Request struct {
	BookingID int64  // ID бронирования
	UserID    int64  // ID коуча
	Reason    string // Причина отклонения (опционально)
}

// Response модель ответа с отклоненным бронированием
type Response struct {
	Booking *domain.Booking // Бронирование по данным сервиса после отклонения
}
