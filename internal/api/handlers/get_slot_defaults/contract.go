package get_slot_defaults

import (
	"context"

	composeProposal "github.com/coachwise/CW-RescheduleService/internal/usecase/compose_proposal"
)

type ComposeProposalUseCase interface {
	ComposeInitial(ctx context.Context, req *composeProposal.ComposeRequest) (*composeProposal.ComposeResponse, error)
	AddSlot(ctx context.Context, req *composeProposal.AddSlotRequest) (*composeProposal.AddSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
