package bookingservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingservice client: booking not found")

	// ErrRequestNotFound возвращается, когда запрос на перенос не найден
	ErrRequestNotFound = errors.New("bookingservice client: reschedule request not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование (403)
	ErrAccessDenied = errors.New("bookingservice client: access denied")

	// ErrRequestSuperseded возвращается при ответе на уже вытесненный или
	// терминальный запрос (409). Состояние переговоров ушло вперед: вызывающая
	// сторона обязана сбросить кэш и заново разрешить режим, это recoverable-ошибка
	ErrRequestSuperseded = errors.New("bookingservice client: reschedule request superseded")

	// ErrServiceUnavailable возвращается при 5xx от booking-сервиса
	// Единственный класс ошибок, для которого допустим автоматический повтор
	ErrServiceUnavailable = errors.New("bookingservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")
)
