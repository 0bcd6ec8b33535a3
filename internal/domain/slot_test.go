package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(start time.Time, d time.Duration) Slot {
	return Slot{Start: start, End: start.Add(d)}
}

func TestValidateProposedSlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		slots   []Slot
		wantErr error
	}{
		{
			name:    "empty set",
			slots:   nil,
			wantErr: ErrNoSlots,
		},
		{
			name: "more than three slots",
			slots: []Slot{
				slotAt(future, time.Hour),
				slotAt(future.Add(2*time.Hour), time.Hour),
				slotAt(future.Add(4*time.Hour), time.Hour),
				slotAt(future.Add(6*time.Hour), time.Hour),
			},
			wantErr: ErrTooManySlots,
		},
		{
			name:    "missing end",
			slots:   []Slot{{Start: future}},
			wantErr: ErrSlotFieldsMissing,
		},
		{
			name:    "missing start",
			slots:   []Slot{{End: future}},
			wantErr: ErrSlotFieldsMissing,
		},
		{
			name:    "start equals end",
			slots:   []Slot{{Start: future, End: future}},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start after end",
			slots:   []Slot{{Start: future.Add(time.Hour), End: future}},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start exactly now",
			slots:   []Slot{slotAt(now, time.Hour)},
			wantErr: ErrSlotInPast,
		},
		{
			name:    "start in the past",
			slots:   []Slot{slotAt(now.Add(-time.Hour), time.Hour)},
			wantErr: ErrSlotInPast,
		},
		{
			name: "valid single slot",
			slots: []Slot{
				slotAt(future, time.Hour),
			},
			wantErr: nil,
		},
		{
			name: "valid three slots",
			slots: []Slot{
				slotAt(future, time.Hour),
				slotAt(future.Add(2*time.Hour), time.Hour),
				slotAt(future.Add(4*time.Hour), time.Hour),
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProposedSlots(tt.slots, now)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProposedSlots_FirstViolationWins(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Первый слот с перепутанными границами, второй в прошлом:
	// должна вернуться ошибка первого слота
	slots := []Slot{
		{Start: now.Add(2 * time.Hour), End: now.Add(time.Hour)},
		slotAt(now.Add(-time.Hour), time.Hour),
	}

	err := ValidateProposedSlots(slots, now)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	a := slotAt(base, time.Hour)

	tests := []struct {
		name  string
		other Slot
		want  bool
	}{
		{"identical", slotAt(base, time.Hour), true},
		{"contained", slotAt(base.Add(15*time.Minute), 30*time.Minute), true},
		{"partial overlap", slotAt(base.Add(30*time.Minute), time.Hour), true},
		{"touching boundary is not overlap", slotAt(base.Add(time.Hour), time.Hour), false},
		{"touching boundary before", slotAt(base.Add(-time.Hour), time.Hour), false},
		{"disjoint", slotAt(base.Add(3*time.Hour), time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(a))
		})
	}
}

func TestSlotEqual_IgnoresLocation(t *testing.T) {
	utc := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	moscow := utc.In(time.FixedZone("MSK", 3*3600))

	a := slotAt(utc, time.Hour)
	b := Slot{Start: moscow, End: moscow.Add(time.Hour)}

	assert.True(t, a.Equal(b))
}
