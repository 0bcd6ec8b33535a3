package initiate_reschedule

import (
	"context"

	initiateReschedule "github.com/coachwise/CW-RescheduleService/internal/usecase/initiate_reschedule"
)

type InitiateRescheduleUseCase interface {
	Execute(ctx context.Context, req *initiateReschedule.Request) (*initiateReschedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
