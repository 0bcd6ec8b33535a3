package select_mode

import "github.com/coachwise/CW-RescheduleService/internal/domain"

// Request модель запроса разрешения режима переговоров
// Чистая функция от роли и состояния леджера: состояние между бронированиями
// не сохраняется, режим пересчитывается при каждом изменении входов
type Request struct {
	BookingID     int64                      // ID бронирования (для логов и инлайн-проверки)
	UserID        int64                      // ID пользователя
	Role          domain.ActorRole           // Роль текущего пользователя
	Proposal      *domain.RescheduleRequest  // Существующее pending-предложение (nil, если нет)
	BookingStatus domain.BookingStatus       // Текущий статус бронирования
	Override      *domain.NegotiationMode    // Явный override режима (переход из уведомления)

	// Eligibility результат уже выполненной проверки права на перенос
	// Если nil, для client-initial режима проверка выполняется инлайн
	Eligibility *domain.EligibilityResult
}

// Response модель ответа с разрешённым режимом
type Response struct {
	Mode domain.NegotiationMode // Разрешённый режим переговоров

	// OverrideApplied true, если сработал явный override
	OverrideApplied bool

	// Ambiguous true, если сработал fallback по неоднозначному состоянию
	Ambiguous bool
}
