package compose_proposal

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("compose_proposal: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к бронированию
	ErrAccessDenied = errors.New("compose_proposal: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compose_proposal: invalid input data")

	// ErrSlotLimitReached возвращается при попытке добавить слот сверх лимита
	// Достижение лимита - no-op, эта ошибка не возвращается наружу
	ErrSlotLimitReached = errors.New("compose_proposal: slot limit reached")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compose_proposal: internal error")
)
