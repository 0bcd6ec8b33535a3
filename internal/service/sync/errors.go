package sync

import "errors"

var (
	// ErrActionInProgress возвращается при попытке запустить второе действие
	// по тому же бронированию, пока первое в полете.
	// Действия по одному бронированию строго сериализуются
	ErrActionInProgress = errors.New("sync: action already in progress for this booking")

	// ErrInvalidOperation возвращается при некорректно собранной операции
	ErrInvalidOperation = errors.New("sync: invalid operation")
)
