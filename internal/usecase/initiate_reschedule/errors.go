package initiate_reschedule

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("initiate_reschedule: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к бронированию
	ErrAccessDenied = errors.New("initiate_reschedule: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_reschedule: invalid input data")

	// ErrInvalidSlots возвращается при нарушении правил валидации слотов
	ErrInvalidSlots = errors.New("initiate_reschedule: invalid proposed slots")

	// ErrNotEligible возвращается, когда перенос для этого бронирования запрещен
	ErrNotEligible = errors.New("initiate_reschedule: not eligible to reschedule")

	// ErrEligibilityUnavailable возвращается, когда проверка права не дала ответа
	// Право на перенос без ответа сервиса не предполагается
	ErrEligibilityUnavailable = errors.New("initiate_reschedule: eligibility check unavailable")

	// ErrResponseRequired возвращается, когда у пользователя уже есть
	// pending-предложение противоположной стороны: сначала нужно ответить
	ErrResponseRequired = errors.New("initiate_reschedule: pending proposal requires a response first")

	// ErrActionInProgress возвращается, когда действие по бронированию уже в полете
	ErrActionInProgress = errors.New("initiate_reschedule: action already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_reschedule: internal error")
)
