package check_eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	bookingsSvc "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

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

type fakeClient struct {
	result *domain.EligibilityResult
	err    error
	calls  int
}

func (f *fakeClient) CheckRescheduleEligibility(ctx context.Context, bookingID int64) (*domain.EligibilityResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func futureBooking(status domain.BookingStatus) *domain.Booking {
	client := int64(200)
	return &domain.Booking{
		ID:       1,
		CoachID:  100,
		ClientID: &client,
		Start:    testNow.Add(48 * time.Hour),
		End:      testNow.Add(49 * time.Hour),
		Status:   status,
	}
}

func newEligibilityUseCase(reader *fakeBookingReader, client *fakeClient) *UseCase {
	uc := NewUseCase(reader, client, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_EligibleAfterUpstreamConfirms(t *testing.T) {
	client := &fakeClient{result: &domain.EligibilityResult{CanReschedule: true}}
	uc := newEligibilityUseCase(&fakeBookingReader{booking: futureBooking(domain.StatusConfirmed)}, client)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 200})
	require.NoError(t, err)

	assert.True(t, resp.CanReschedule)
	assert.Equal(t, domain.RoleClient, resp.Role)
	assert.Equal(t, 1, client.calls, "local pre-filter pass still requires upstream confirmation")
}

func TestExecute_LocalPreFilterDeniesWithoutNetwork(t *testing.T) {
	tests := []struct {
		name       string
		booking    *domain.Booking
		wantReason string
	}{
		{
			name: "booking already started",
			booking: func() *domain.Booking {
				b := futureBooking(domain.StatusConfirmed)
				b.Start = testNow.Add(-time.Hour)
				b.End = testNow
				return b
			}(),
			wantReason: domain.ReasonBookingInPast,
		},
		{
			name:       "status outside the allow-list",
			booking:    futureBooking(domain.StatusCancelled),
			wantReason: domain.ReasonNotReschedulableStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{result: &domain.EligibilityResult{CanReschedule: true}}
			uc := newEligibilityUseCase(&fakeBookingReader{booking: tt.booking}, client)

			resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 200})
			require.NoError(t, err)

			assert.False(t, resp.CanReschedule)
			require.NotNil(t, resp.ReasonCode)
			assert.Equal(t, tt.wantReason, *resp.ReasonCode)
			assert.Equal(t, 0, client.calls, "pre-filter denial must not hit the network")
		})
	}
}

func TestExecute_UpstreamDenialWins(t *testing.T) {
	reason := domain.ReasonTooCloseToStart
	client := &fakeClient{result: &domain.EligibilityResult{CanReschedule: false, ReasonCode: &reason}}
	uc := newEligibilityUseCase(&fakeBookingReader{booking: futureBooking(domain.StatusConfirmed)}, client)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 200})
	require.NoError(t, err)

	assert.False(t, resp.CanReschedule)
	require.NotNil(t, resp.ReasonCode)
	assert.Equal(t, domain.ReasonTooCloseToStart, *resp.ReasonCode)
}

func TestExecute_NetworkFailureIsNotEligible(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	uc := newEligibilityUseCase(&fakeBookingReader{booking: futureBooking(domain.StatusConfirmed)}, client)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 200})
	assert.ErrorIs(t, err, ErrEligibilityUnavailable, "eligibility is never assumed on transport failure")
}

func TestExecute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		readerErr error
		wantErr   error
	}{
		{"not found", bookingsSvc.ErrBookingNotFound, ErrBookingNotFound},
		{"access denied", bookingsSvc.ErrAccessDenied, ErrAccessDenied},
		{"other", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newEligibilityUseCase(&fakeBookingReader{err: tt.readerErr}, &fakeClient{})

			_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 200})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newEligibilityUseCase(&fakeBookingReader{}, &fakeClient{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 200})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, UserID: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
