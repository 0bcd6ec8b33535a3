package check_eligibility

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_eligibility: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является
	// ни коучем, ни клиентом бронирования
	ErrAccessDenied = errors.New("check_eligibility: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_eligibility: invalid input data")

	// ErrEligibilityUnavailable возвращается, когда booking-сервис не ответил.
	// Без ответа сервиса право на перенос НЕ предполагается
	ErrEligibilityUnavailable = errors.New("check_eligibility: eligibility check unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_eligibility: internal error")
)
