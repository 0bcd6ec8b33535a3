package decline_booking

import (
	"context"

	declineBooking "github.com/coachwise/CW-RescheduleService/internal/usecase/decline_booking"
)

type DeclineBookingUseCase interface {
	Execute(ctx context.Context, req *declineBooking.Request) (*declineBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
