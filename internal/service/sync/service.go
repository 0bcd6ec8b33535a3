package sync

import (
	"context"
	"errors"
	stdsync "sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	"github.com/coachwise/CW-RescheduleService/pkg/metrics"
)

// Service синхронизатор оптимистичных обновлений кэша.
// Оборачивает все мутирующие действия: снапшот перед отправкой, оптимистичная
// проекция, восстановление снапшота при ошибке, инвалидация зависимых ключей
// при успехе. Держит per-booking guard, сериализующий действия по бронированию
type Service struct {
	cache   *querycache.Cache
	logger  Logger
	metrics *metrics.Metrics

	mu       stdsync.Mutex
	inflight map[int64]struct{}

	// retryDelay задержка между повторами, переопределяется в тестах
	retryDelay time.Duration
}

// NewService создает новый синхронизатор поверх кэша
func NewService(cache *querycache.Cache, logger Logger) *Service {
	return &Service{
		cache:      cache,
		logger:     logger,
		inflight:   make(map[int64]struct{}),
		retryDelay: domain.AcceptDeclineRetryDelay,
	}
}

// SetMetrics подключает учет откатов оптимистичных обновлений
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// Run выполняет мутирующую операцию по протоколу снапшот/проекция/мутация.
// Пока операция в полете, повторные действия по тому же бронированию
// отклоняются с ErrActionInProgress
func (s *Service) Run(ctx context.Context, op Operation) error {
	if op.Mutate == nil || op.BookingID <= 0 {
		return ErrInvalidOperation
	}

	if !s.acquire(op.BookingID) {
		s.logger.Warn("Sync: %s rejected, action already in progress for booking id=%d", op.Name, op.BookingID)
		return ErrActionInProgress
	}
	defer s.release(op.BookingID)

	tx := s.cache.Begin(op.SnapshotKeys...)

	if op.Optimistic != nil {
		if err := op.Optimistic(s.cache); err != nil {
			s.rollback(tx, op)
			s.logger.Error("Sync: %s optimistic projection failed for booking id=%d: %v", op.Name, op.BookingID, err)
			return err
		}
	}

	if err := s.mutate(ctx, op); err != nil {
		s.rollback(tx, op)
		s.logger.Warn("Sync: %s failed for booking id=%d, optimistic state rolled back: %v", op.Name, op.BookingID, err)
		return err
	}

	tx.Commit()
	if len(op.InvalidateOnSuccess) > 0 {
		s.cache.Invalidate(op.InvalidateOnSuccess...)
	}

	s.logger.Info("Sync: %s confirmed for booking id=%d, invalidated %d dependent keys",
		op.Name, op.BookingID, len(op.InvalidateOnSuccess))
	return nil
}

func (s *Service) rollback(tx *querycache.Tx, op Operation) {
	tx.Rollback()
	if s.metrics != nil {
		s.metrics.CacheRollbacksTotal.WithLabelValues(op.Name).Inc()
	}
}

// mutate выполняет сетевую мутацию, при необходимости с ограниченным повтором
func (s *Service) mutate(ctx context.Context, op Operation) error {
	if !op.RetryOnUnavailable {
		return op.Mutate(ctx)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(domain.AcceptDeclineMaxAttempts-1, retry.NewConstant(s.retryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op.Mutate(ctx)
		if err == nil {
			return nil
		}
		// Повторяем только транзиентные 5xx, остальное падает сразу
		if errors.Is(err, bookingservice.ErrServiceUnavailable) {
			s.logger.Warn("Sync: %s attempt %d/%d failed for booking id=%d: %v",
				op.Name, attempt, domain.AcceptDeclineMaxAttempts, op.BookingID, err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *Service) acquire(bookingID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[bookingID]; busy {
		return false
	}
	s.inflight[bookingID] = struct{}{}
	return true
}

func (s *Service) release(bookingID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, bookingID)
}
