package accept_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("accept_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является коучем бронирования
	ErrAccessDenied = errors.New("accept_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accept_booking: invalid input data")

	// ErrCannotAccept возвращается, когда статус бронирования не допускает принятия
	ErrCannotAccept = errors.New("accept_booking: booking cannot be accepted")

	// ErrActionInProgress возвращается, когда действие по бронированию уже в полете
	ErrActionInProgress = errors.New("accept_booking: action already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_booking: internal error")
)
