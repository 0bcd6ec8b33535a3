package accept_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	bookingClient "github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
	syncSvc "github.com/coachwise/CW-RescheduleService/internal/service/sync"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	coachID  = int64(100)
	clientID = int64(200)
)

func requestedBooking() *domain.Booking {
	cid := clientID
	return &domain.Booking{
		ID:       1,
		CoachID:  coachID,
		ClientID: &cid,
		Start:    time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
		Status:   domain.StatusRequested,
	}
}

type fakeBookingReader struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingReader) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakeAcceptClient struct {
	calls int
	keys  []string
	errs  []error // ошибка на соответствующую попытку, nil - успех
}

func (f *fakeAcceptClient) AcceptBooking(ctx context.Context, bookingID int64, idempotencyKey string) (*domain.Booking, error) {
	f.calls++
	f.keys = append(f.keys, idempotencyKey)
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	b := requestedBooking()
	b.Status = domain.StatusConfirmed
	return b, nil
}

func newTestUseCase(reader *fakeBookingReader, client *fakeAcceptClient) (*UseCase, *querycache.Cache) {
	cache := querycache.New()
	synchronizer := syncSvc.NewService(cache, nopLogger{})
	return NewUseCase(reader, client, synchronizer, nopLogger{}), cache
}

func TestExecute_AcceptsRequestedBooking(t *testing.T) {
	client := &fakeAcceptClient{}
	uc, cache := newTestUseCase(&fakeBookingReader{booking: requestedBooking()}, client)

	require.NoError(t, cache.SetJSON(querycache.BookingKey(1), requestedBooking()))

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: coachID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, 1, client.calls)
	require.Len(t, client.keys, 1)
	assert.NotEmpty(t, client.keys[0])

	// После успеха кэш инвалидируется, следующее чтение пойдет в сервис
	_, hit := cache.Get(querycache.BookingKey(1))
	assert.False(t, hit)
}

func TestExecute_OnlyCoachMayAccept(t *testing.T) {
	client := &fakeAcceptClient{}
	uc, _ := newTestUseCase(&fakeBookingReader{booking: requestedBooking()}, client)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: clientID})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.calls)
}

func TestExecute_StatusGate(t *testing.T) {
	booking := requestedBooking()
	booking.Status = domain.StatusConfirmed

	client := &fakeAcceptClient{}
	uc, _ := newTestUseCase(&fakeBookingReader{booking: booking}, client)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: coachID})
	assert.ErrorIs(t, err, ErrCannotAccept)
	assert.Zero(t, client.calls)
}

func TestExecute_RetriesTransientFailure(t *testing.T) {
	client := &fakeAcceptClient{errs: []error{bookingClient.ErrServiceUnavailable}}
	uc, _ := newTestUseCase(&fakeBookingReader{booking: requestedBooking()}, client)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: coachID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, 2, client.calls, "transient 5xx is retried without user involvement")
	require.Len(t, client.keys, 2)
	assert.Equal(t, client.keys[0], client.keys[1], "retries must reuse the idempotency key")
}

func TestExecute_RollsBackProjectionOnFailure(t *testing.T) {
	client := &fakeAcceptClient{errs: []error{errors.New("boom")}}
	uc, cache := newTestUseCase(&fakeBookingReader{booking: requestedBooking()}, client)

	require.NoError(t, cache.SetJSON(querycache.BookingKey(1), requestedBooking()))
	before, hit := cache.Get(querycache.BookingKey(1))
	require.True(t, hit)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: coachID})
	assert.ErrorIs(t, err, ErrInternal)

	after, hit := cache.Get(querycache.BookingKey(1))
	require.True(t, hit)
	assert.Equal(t, before, after, "optimistic projection must be rolled back byte-for-byte")
}

func TestExecute_ReaderErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		readerErr error
		want      error
	}{
		{"not found", bookingsSvc.ErrBookingNotFound, ErrBookingNotFound},
		{"access denied", bookingsSvc.ErrAccessDenied, ErrAccessDenied},
		{"internal", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeBookingReader{err: tt.readerErr}, &fakeAcceptClient{})

			_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: coachID})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingReader{booking: requestedBooking()}, &fakeAcceptClient{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: coachID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
