package select_mode

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_mode: invalid input data")

	// ErrNotEligible возвращается, когда клиент не вправе инициировать перенос
	ErrNotEligible = errors.New("select_mode: client is not eligible to reschedule")

	// ErrEligibilityUnavailable возвращается, когда инлайн-проверка права
	// на перенос не дала ответа
	ErrEligibilityUnavailable = errors.New("select_mode: eligibility check unavailable")
)
