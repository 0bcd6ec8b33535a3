package domain

import "time"

// Slot composition constants
const (
	// SlotStepMinutes шаг округления предлагаемых слотов
	SlotStepMinutes = 15

	// MaxProposedSlots максимум кандидатов в одном предложении
	MaxProposedSlots = 3

	// DefaultAnchorLeadMinutes отступ якоря от текущего времени,
	// когда у бронирования нет исходного времени окончания
	DefaultAnchorLeadMinutes = 15

	// AvailabilityProbeCap лимит попыток подбора слота по availability-данным
	AvailabilityProbeCap = 10

	// LateNightCutoffHour час, начиная с которого слот переносится на утро
	// следующего дня (слоты 22:00 и позже не предлагаем)
	LateNightCutoffHour = 22

	// MorningRolloverHour час начала слота после позднего переноса
	MorningRolloverHour = 9
)

// Retry constants for accept/decline mutations
const (
	// AcceptDeclineMaxAttempts общее число попыток (1 основная + 2 повтора)
	AcceptDeclineMaxAttempts = 3

	// AcceptDeclineRetryDelay фиксированная задержка между попытками
	AcceptDeclineRetryDelay = time.Second
)
