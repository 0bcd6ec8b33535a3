package compose_proposal

import (
	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// ComposeRequest модель запроса дефолтного слота для предложения переноса
type ComposeRequest struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя (коуч или клиент)

	// CompetingSlots уже предложенные/конкурирующие слоты, с которыми
	// кандидат не должен пересекаться
	CompetingSlots []domain.Slot

	// UseAvailability запрашивать ли availability-данные коуча
	// При недоступности данных композер откатывается к дефолтному алгоритму
	UseAvailability bool
}

// ComposeResponse модель ответа с подобранным слотом
type ComposeResponse struct {
	Slot domain.Slot // Подобранный слот-кандидат

	// ProbeExhausted true, если лимит попыток подбора по availability исчерпан
	// и возвращён последний (возможно конфликтующий) кандидат.
	// Нефатальное предупреждение для пользователя
	ProbeExhausted bool
}

// AddSlotRequest модель запроса следующего слота-кандидата
type AddSlotRequest struct {
	BookingID int64         // ID бронирования (источник длительности)
	UserID    int64         // ID пользователя
	Existing  []domain.Slot // Уже составленные слоты предложения
}

// AddSlotResponse модель ответа с дополненным списком слотов
type AddSlotResponse struct {
	Slots []domain.Slot // Список слотов после добавления (без изменений при лимите)
	Added bool          // false, если лимит слотов уже достигнут (no-op)
}
