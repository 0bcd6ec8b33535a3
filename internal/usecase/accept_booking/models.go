package accept_booking

import (
	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// Request модель запроса принятия бронирования коучем
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID коуча
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	Booking *domain.Booking // Бронирование по данным сервиса после принятия
}
