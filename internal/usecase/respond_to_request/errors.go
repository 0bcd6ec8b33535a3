package respond_to_request

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("respond_to_request: booking not found")

	// ErrRequestNotFound возвращается, когда запрос не найден в леджере
	ErrRequestNotFound = errors.New("respond_to_request: reschedule request not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к бронированию
	ErrAccessDenied = errors.New("respond_to_request: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("respond_to_request: invalid input data")

	// ErrRequestNotPending возвращается при ответе на терминальный запрос
	ErrRequestNotPending = errors.New("respond_to_request: request is not pending")

	// ErrNotYourTurn возвращается, когда pending-запрос ждет действия
	// противоположной стороны
	ErrNotYourTurn = errors.New("respond_to_request: request is pending the other party's action")

	// ErrSlotSelectionRequired возвращается при approve многослотового
	// предложения без явно выбранного слота
	ErrSlotSelectionRequired = errors.New("respond_to_request: explicit slot selection required")

	// ErrSlotNotInProposal возвращается, когда выбранный слот не входит
	// в предложение
	ErrSlotNotInProposal = errors.New("respond_to_request: selected slot is not part of the proposal")

	// ErrDeclineNotConfirmed возвращается при decline без явного подтверждения.
	// Отклонение необратимо для раунда, исходное время остается в силе
	ErrDeclineNotConfirmed = errors.New("respond_to_request: decline requires explicit confirmation")

	// ErrInvalidCounterSlots возвращается при нарушении валидации контр-слотов
	ErrInvalidCounterSlots = errors.New("respond_to_request: invalid counter-proposed slots")

	// ErrRequestSuperseded возвращается при ответе на уже вытесненный запрос.
	// Recoverable: кэш сброшен, вызывающая сторона обязана заново разрешить режим
	ErrRequestSuperseded = errors.New("respond_to_request: negotiation state has moved on")

	// ErrActionInProgress возвращается, когда действие по бронированию уже в полете
	ErrActionInProgress = errors.New("respond_to_request: action already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("respond_to_request: internal error")
)
