package respond_to_request

import "github.com/coachwise/CW-RescheduleService/internal/domain"

// Action tagged union действий ответа на запрос переноса.
// Закрытый набор вариантов вместо угадывания намерения по комбинации
// заполненных опциональных полей
type Action interface {
	actionName() string
}

// ApproveAction принятие одного из предложенных слотов.
// SelectedSlot может быть nil только для предложения с единственным слотом
// (single-slot shortcut): выбор очевиден, явное указание не требуется
type ApproveAction struct {
	SelectedSlot *domain.Slot
}

func (ApproveAction) actionName() string { return "approve" }

// DeclineAction отклонение предложения целиком.
// Confirmed обязано быть true: отклонение необратимо для раунда и требует
// явного подтверждения пользователя (блокирующий yes/no prompt на стороне UI)
type DeclineAction struct {
	Confirmed bool
}

func (DeclineAction) actionName() string { return "decline" }

// CounterProposeAction встречное предложение с новым набором слотов.
// Слоты валидируются теми же правилами, что и первичное предложение
type CounterProposeAction struct {
	Slots []domain.Slot
}

func (CounterProposeAction) actionName() string { return "counter_propose" }

// Request модель запроса ответа на предложение переноса
type Request struct {
	BookingID int64  // ID бронирования
	RequestID int64  // ID запроса в леджере
	UserID    int64  // ID отвечающего (коуч или клиент)
	Message   string // Свободный текст сообщения
	Action    Action // Вариант действия
}

// Response модель ответа с авторитетным состоянием после разрешения
type Response struct {
	Booking *domain.Booking  // Бронирование по данным сервиса после ответа
	Role    domain.ActorRole // Роль отвечавшего
	Action  string           // Выполненное действие
}
