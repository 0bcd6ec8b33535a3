package respond_reschedule

import (
	"context"

	respondToRequest "github.com/coachwise/CW-RescheduleService/internal/usecase/respond_to_request"
)

type RespondUseCase interface {
	Execute(ctx context.Context, req *respondToRequest.Request) (*respondToRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
