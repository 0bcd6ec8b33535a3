package select_mode

import (
	"context"

	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

// EligibilityChecker интерфейс инлайн-проверки права на перенос
// Используется только для client-initial режима, когда результат проверки
// не передан вызывающей стороной
type EligibilityChecker interface {
	Execute(ctx context.Context, req *checkEligibility.Request) (*checkEligibility.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
