package sync

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Operation описывает одно мутирующее действие под защитой синхронизатора.
// Порядок выполнения: снапшот ключей -> оптимистичная проекция -> сетевая
// мутация -> commit + инвалидация зависимых ключей. При любой ошибке мутации
// снапшот восстанавливается байт-в-байт.
type Operation struct {
	// Name имя операции для логов и метрик
	Name string

	// BookingID бронирование, действия по которому сериализуются
	BookingID int64

	// SnapshotKeys ключи кэша, которые снапшотятся перед оптимистичной записью
	SnapshotKeys []string

	// Optimistic записывает спроецированное состояние в кэш до ухода в сеть,
	// чтобы UI отразил действие не дожидаясь ответа. Может быть nil
	Optimistic func(cache *querycache.Cache) error

	// Mutate выполняет сетевую мутацию
	Mutate func(ctx context.Context) error

	// InvalidateOnSuccess зависимые ключи, сбрасываемые после подтверждения,
	// чтобы подтянуть авторитетные данные
	InvalidateOnSuccess []string

	// RetryOnUnavailable включает ограниченный повтор при 5xx:
	// до трёх попыток с фиксированной секундной задержкой.
	// Только для accept/decline, остальные действия падают с первой ошибки
	RetryOnUnavailable bool
}
