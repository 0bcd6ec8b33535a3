package initiate_reschedule

import "github.com/coachwise/CW-RescheduleService/internal/domain"

// Request модель запроса первичного предложения переноса
type Request struct {
	BookingID int64         // ID бронирования
	UserID    int64         // ID инициатора (коуч или клиент)
	Slots     []domain.Slot // 1..3 слота-кандидата
	Message   string        // Свободный текст сообщения/причины
}

// Response модель ответа с созданным запросом на перенос
type Response struct {
	Request       *domain.RescheduleRequest // Созданный запрос (авторитетные данные сервиса)
	BookingStatus domain.BookingStatus      // Новый статус бронирования
	Role          domain.ActorRole          // Роль инициатора
}
