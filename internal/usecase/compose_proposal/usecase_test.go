package compose_proposal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
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

type fakeAvailability struct {
	slots []domain.Slot
	err   error
	calls int
}

func (f *fakeAvailability) GetCoachAvailability(ctx context.Context, req bookingservice.AvailabilityRequest) ([]domain.Slot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testBooking() *domain.Booking {
	client := int64(200)
	return &domain.Booking{
		ID:       1,
		CoachID:  100,
		ClientID: &client,
		Start:    time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
		Status:   domain.StatusConfirmed,
	}
}

func newComposeUseCase(reader *fakeBookingReader, availability *fakeAvailability) *UseCase {
	uc := NewUseCase(reader, availability, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestComposeInitial_DefaultAlgorithm(t *testing.T) {
	uc := newComposeUseCase(&fakeBookingReader{booking: testBooking()}, &fakeAvailability{})

	resp, err := uc.ComposeInitial(context.Background(), &ComposeRequest{BookingID: 1, UserID: 100})
	require.NoError(t, err)

	// Якорь - конец бронирования 11:00, округление дает 11:15
	assert.Equal(t, time.Date(2026, 3, 11, 11, 15, 0, 0, time.UTC), resp.Slot.Start)
	assert.Equal(t, time.Hour, resp.Slot.Duration())
	assert.False(t, resp.ProbeExhausted)
}

func TestComposeInitial_AvailabilityPreferred(t *testing.T) {
	availability := &fakeAvailability{
		slots: []domain.Slot{
			{
				Start: time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 3, 11, 16, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newComposeUseCase(&fakeBookingReader{booking: testBooking()}, availability)

	resp, err := uc.ComposeInitial(context.Background(), &ComposeRequest{
		BookingID:       1,
		UserID:          100,
		UseAvailability: true,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC), resp.Slot.Start)
	assert.Equal(t, 1, availability.calls)
}

func TestComposeInitial_AvailabilityFailureFallsBack(t *testing.T) {
	availability := &fakeAvailability{err: errors.New("upstream down")}
	uc := newComposeUseCase(&fakeBookingReader{booking: testBooking()}, availability)

	resp, err := uc.ComposeInitial(context.Background(), &ComposeRequest{
		BookingID:       1,
		UserID:          100,
		UseAvailability: true,
	})
	require.NoError(t, err, "availability failure is non-fatal")

	assert.Equal(t, time.Date(2026, 3, 11, 11, 15, 0, 0, time.UTC), resp.Slot.Start)
}

func TestComposeInitial_ProbeCapExhaustion(t *testing.T) {
	// Все окна конфликтуют с конкурирующим слотом: каждая попытка отклоняет
	// кандидата и сдвигает якорь к следующему окну, пока лимит не исчерпан
	windowStart := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	var windows []domain.Slot
	for i := 0; i < 12; i++ {
		start := windowStart.Add(time.Duration(i) * 2 * time.Hour)
		windows = append(windows, domain.Slot{Start: start, End: start.Add(90 * time.Minute)})
	}
	competing := domain.Slot{
		Start: windowStart.Add(-time.Hour),
		End:   windowStart.Add(48 * time.Hour),
	}

	availability := &fakeAvailability{slots: windows}
	uc := newComposeUseCase(&fakeBookingReader{booking: testBooking()}, availability)

	resp, err := uc.ComposeInitial(context.Background(), &ComposeRequest{
		BookingID:       1,
		UserID:          100,
		UseAvailability: true,
		CompetingSlots:  []domain.Slot{competing},
	})
	require.NoError(t, err)

	assert.True(t, resp.ProbeExhausted, "cap exhaustion must surface as a non-fatal warning")
	assert.False(t, resp.Slot.IsZero(), "last candidate is still returned")
}

func TestComposeInitial_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		readerErr error
		wantErr   error
	}{
		{"not found", bookingsSvc.ErrBookingNotFound, ErrBookingNotFound},
		{"access denied", bookingsSvc.ErrAccessDenied, ErrAccessDenied},
		{"other error", errors.New("db down"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newComposeUseCase(&fakeBookingReader{err: tt.readerErr}, &fakeAvailability{})

			_, err := uc.ComposeInitial(context.Background(), &ComposeRequest{BookingID: 1, UserID: 100})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddSlot_AnchorsAfterLastSlot(t *testing.T) {
	uc := newComposeUseCase(&fakeBookingReader{booking: testBooking()}, &fakeAvailability{})

	existing := []domain.Slot{
		{
			Start: time.Date(2026, 3, 11, 11, 15, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 11, 12, 15, 0, 0, time.UTC),
		},
	}

	resp, err := uc.AddSlot(context.Background(), &AddSlotRequest{
		BookingID: 1,
		UserID:    100,
		Existing:  existing,
	})
	require.NoError(t, err)
	require.True(t, resp.Added)
	require.Len(t, resp.Slots, 2)

	// Якорь 12:15 + 15 минут = 12:30, округление дает 12:45
	assert.Equal(t, time.Date(2026, 3, 11, 12, 45, 0, 0, time.UTC), resp.Slots[1].Start)
}

func TestAddSlot_NoOpAtLimit(t *testing.T) {
	reader := &fakeBookingReader{booking: testBooking()}
	uc := newComposeUseCase(reader, &fakeAvailability{})

	base := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)
	full := []domain.Slot{
		{Start: base, End: base.Add(time.Hour)},
		{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)},
		{Start: base.Add(4 * time.Hour), End: base.Add(5 * time.Hour)},
	}

	resp, err := uc.AddSlot(context.Background(), &AddSlotRequest{
		BookingID: 1,
		UserID:    100,
		Existing:  full,
	})
	require.NoError(t, err)

	assert.False(t, resp.Added)
	assert.Equal(t, full, resp.Slots, "at the limit the slot set is returned unchanged")
}
