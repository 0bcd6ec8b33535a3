package check_eligibility

import "github.com/coachwise/CW-RescheduleService/internal/domain"

// Request модель запроса проверки права на перенос
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя (коуч или клиент бронирования)
}

// Response модель ответа проверки
type Response struct {
	CanReschedule bool             // Разрешен ли перенос
	ReasonCode    *string          // Код причины отказа (если перенос запрещен)
	Role          domain.ActorRole // Роль пользователя в бронировании
}
