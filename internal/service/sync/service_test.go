package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(cache *querycache.Cache) *Service {
	s := NewService(cache, nopLogger{})
	s.retryDelay = time.Millisecond
	return s
}

func TestRunCommitsOnSuccess(t *testing.T) {
	cache := querycache.New()
	cache.Set(querycache.BookingKey(1), []byte(`{"status":"confirmed"}`))
	svc := newTestService(cache)

	err := svc.Run(context.Background(), Operation{
		Name:         "test_op",
		BookingID:    1,
		SnapshotKeys: []string{querycache.BookingKey(1)},
		Optimistic: func(c *querycache.Cache) error {
			c.Set(querycache.BookingKey(1), []byte(`{"status":"pending_reschedule_client_request"}`))
			return nil
		},
		Mutate:              func(ctx context.Context) error { return nil },
		InvalidateOnSuccess: []string{querycache.BookingKey(1)},
	})
	require.NoError(t, err)

	// Успех инвалидирует зависимые ключи: следующий читатель получит свежие данные
	_, hit := cache.Get(querycache.BookingKey(1))
	assert.False(t, hit)
}

func TestRunRollsBackOnMutateFailure(t *testing.T) {
	cache := querycache.New()
	before := []byte(`{"status":"confirmed"}`)
	cache.Set(querycache.BookingKey(1), before)
	svc := newTestService(cache)

	submitErr := errors.New("boom")

	err := svc.Run(context.Background(), Operation{
		Name:         "test_op",
		BookingID:    1,
		SnapshotKeys: []string{querycache.BookingKey(1)},
		Optimistic: func(c *querycache.Cache) error {
			c.Set(querycache.BookingKey(1), []byte(`{"status":"optimistic"}`))
			return nil
		},
		Mutate: func(ctx context.Context) error { return submitErr },
	})
	require.ErrorIs(t, err, submitErr)

	got, hit := cache.Get(querycache.BookingKey(1))
	require.True(t, hit)
	assert.Equal(t, before, got, "failed mutation must leave no optimistic residue")
}

func TestRunRejectsConcurrentActionForSameBooking(t *testing.T) {
	cache := querycache.New()
	svc := newTestService(cache)

	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = svc.Run(context.Background(), Operation{
			Name:      "slow_op",
			BookingID: 1,
			Mutate: func(ctx context.Context) error {
				close(entered)
				<-release
				return nil
			},
		})
	}()

	<-entered
	err := svc.Run(context.Background(), Operation{
		Name:      "second_op",
		BookingID: 1,
		Mutate:    func(ctx context.Context) error { return nil },
	})
	assert.ErrorIs(t, err, ErrActionInProgress)

	// Другое бронирование не блокируется
	err = svc.Run(context.Background(), Operation{
		Name:      "other_booking",
		BookingID: 2,
		Mutate:    func(ctx context.Context) error { return nil },
	})
	assert.NoError(t, err)

	close(release)
}

func TestRunRetriesOnlyUnavailable(t *testing.T) {
	cache := querycache.New()
	svc := newTestService(cache)

	calls := 0
	err := svc.Run(context.Background(), Operation{
		Name:      "retry_op",
		BookingID: 1,
		Mutate: func(ctx context.Context) error {
			calls++
			return fmt.Errorf("%w: 503", bookingservice.ErrServiceUnavailable)
		},
		RetryOnUnavailable: true,
	})
	require.ErrorIs(t, err, bookingservice.ErrServiceUnavailable)
	assert.Equal(t, 3, calls, "unavailable errors retry up to three attempts total")
}

func TestRunDoesNotRetryNonTransientErrors(t *testing.T) {
	cache := querycache.New()
	svc := newTestService(cache)

	calls := 0
	err := svc.Run(context.Background(), Operation{
		Name:      "conflict_op",
		BookingID: 1,
		Mutate: func(ctx context.Context) error {
			calls++
			return bookingservice.ErrRequestSuperseded
		},
		RetryOnUnavailable: true,
	})
	require.ErrorIs(t, err, bookingservice.ErrRequestSuperseded)
	assert.Equal(t, 1, calls, "conflicts are not transient and must not be retried")
}

func TestRunRecoversAfterTransientFailure(t *testing.T) {
	cache := querycache.New()
	svc := newTestService(cache)

	calls := 0
	err := svc.Run(context.Background(), Operation{
		Name:      "flaky_op",
		BookingID: 1,
		Mutate: func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: 502", bookingservice.ErrServiceUnavailable)
			}
			return nil
		},
		RetryOnUnavailable: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunWithoutRetryFailsFast(t *testing.T) {
	cache := querycache.New()
	svc := newTestService(cache)

	calls := 0
	err := svc.Run(context.Background(), Operation{
		Name:      "no_retry_op",
		BookingID: 1,
		Mutate: func(ctx context.Context) error {
			calls++
			return fmt.Errorf("%w: 500", bookingservice.ErrServiceUnavailable)
		},
	})
	require.ErrorIs(t, err, bookingservice.ErrServiceUnavailable)
	assert.Equal(t, 1, calls)
}

func TestRunValidatesOperation(t *testing.T) {
	svc := newTestService(querycache.New())

	err := svc.Run(context.Background(), Operation{Name: "no_mutate", BookingID: 1})
	assert.ErrorIs(t, err, ErrInvalidOperation)

	err = svc.Run(context.Background(), Operation{
		Name:   "no_booking",
		Mutate: func(ctx context.Context) error { return nil },
	})
	assert.ErrorIs(t, err, ErrInvalidOperation)
}
