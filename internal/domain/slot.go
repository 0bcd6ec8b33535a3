package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoSlots возвращается, когда не предложено ни одного слота
	ErrNoSlots = errors.New("at least one slot is required")

	// ErrTooManySlots возвращается при превышении лимита слотов в предложении
	ErrTooManySlots = errors.New("too many proposed slots")

	// ErrSlotFieldsMissing возвращается, когда у слота не заполнено время начала или конца
	ErrSlotFieldsMissing = errors.New("slot start and end must be set")

	// ErrInvalidTimeRange возвращается, когда начало слота не раньше конца
	ErrInvalidTimeRange = errors.New("slot start must be before slot end")

	// ErrSlotInPast возвращается, когда начало слота не в будущем
	ErrSlotInPast = errors.New("slot start must be in the future")
)

// Slot is a candidate {start, end} time pair offered during negotiation.
// Invariant: start < end; start strictly in the future at submission time.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsZero returns true if neither boundary is set
func (s Slot) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Equal сравнивает слоты по моментам времени (независимо от таймзоны представления)
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// Overlaps проверяет реальное пересечение интервалов
// Граничные случаи (конец одного совпадает с началом другого) пересечением не считаются
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

// ValidateProposedSlots проверяет набор слотов перед любой отправкой предложения.
// Возвращает первое нарушенное правило:
// 1. Набор непустой и не больше MaxProposedSlots
// 2. У каждого слота заполнены начало и конец
// 3. Начало строго раньше конца
// 4. Начало строго в будущем относительно now
func ValidateProposedSlots(slots []Slot, now time.Time) error {
	if len(slots) == 0 {
		return ErrNoSlots
	}
	if len(slots) > MaxProposedSlots {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManySlots, len(slots), MaxProposedSlots)
	}

	for i, slot := range slots {
		if slot.Start.IsZero() || slot.End.IsZero() {
			return fmt.Errorf("%w: slot %d", ErrSlotFieldsMissing, i+1)
		}
		if !slot.Start.Before(slot.End) {
			return fmt.Errorf("%w: slot %d", ErrInvalidTimeRange, i+1)
		}
		if !slot.Start.After(now) {
			return fmt.Errorf("%w: slot %d", ErrSlotInPast, i+1)
		}
	}

	return nil
}
