package get_negotiation_mode

import (
	"context"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	selectMode "github.com/coachwise/CW-RescheduleService/internal/usecase/select_mode"
)

type BookingsService interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

type SelectModeUseCase interface {
	Execute(ctx context.Context, req *selectMode.Request) (*selectMode.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
