package compose_proposal

import (
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// roundUpToStep округляет время вверх до ближайшей 15-минутной границы,
// предварительно прибавив минуту (чтобы результат был строго позже исходного).
// Секунды и миллисекунды обнуляются
func roundUpToStep(t time.Time) time.Time {
	t = t.Add(time.Minute)
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())

	if rem := t.Minute() % domain.SlotStepMinutes; rem != 0 {
		t = t.Add(time.Duration(domain.SlotStepMinutes-rem) * time.Minute)
	}
	return t
}

// defaultSlot вычисляет дефолтный слот по якорю:
// 1. Округляем якорь вверх до 15-минутной границы
// 2. Если результат не в будущем - пересчитываем от now
// 3. Поздний вечер (>= 22:00) переносим на 09:00 следующего дня
// 4. Конец слота = начало + исходная длительность
func defaultSlot(anchor, now time.Time, duration time.Duration) domain.Slot {
	start := roundUpToStep(anchor)

	if !start.After(now) {
		start = roundUpToStep(now)
	}

	if start.Hour() >= domain.LateNightCutoffHour {
		next := start.AddDate(0, 0, 1)
		start = time.Date(next.Year(), next.Month(), next.Day(),
			domain.MorningRolloverHour, 0, 0, 0, next.Location())
	}

	return domain.Slot{Start: start, End: start.Add(duration)}
}

// earliestAvailableAfter ищет самое раннее availability-окно строго после
// anchor, способное вместить слот длительности duration
func earliestAvailableAfter(availability []domain.Slot, anchor time.Time, duration time.Duration) (domain.Slot, bool) {
	var best domain.Slot
	found := false

	for _, window := range availability {
		if !window.Start.After(anchor) {
			continue
		}
		if window.Duration() < duration {
			continue
		}
		if !found || window.Start.Before(best.Start) {
			best = window
			found = true
		}
	}

	if !found {
		return domain.Slot{}, false
	}
	return domain.Slot{Start: best.Start, End: best.Start.Add(duration)}, true
}

// conflictsWithAny проверяет пересечение кандидата с уже предложенными
// или конкурирующими слотами
func conflictsWithAny(candidate domain.Slot, taken []domain.Slot) bool {
	for _, slot := range taken {
		if candidate.Overlaps(slot) {
			return true
		}
	}
	return false
}
