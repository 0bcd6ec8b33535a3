package select_mode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeEligibility struct {
	resp  *checkEligibility.Response
	err   error
	calls int
}

func (f *fakeEligibility) Execute(ctx context.Context, req *checkEligibility.Request) (*checkEligibility.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func proposalBy(role domain.ActorRole, status domain.RescheduleStatus) *domain.RescheduleRequest {
	return &domain.RescheduleRequest{
		ID:         7,
		ProposedBy: role,
		ProposedSlots: []domain.Slot{{
			Start: time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC),
		}},
		Status: status,
	}
}

func eligible() *domain.EligibilityResult {
	return &domain.EligibilityResult{CanReschedule: true}
}

func TestExecute_ModeGrid(t *testing.T) {
	tests := []struct {
		name          string
		role          domain.ActorRole
		proposal      *domain.RescheduleRequest
		wantMode      domain.NegotiationMode
		wantAmbiguous bool
	}{
		{
			name:     "client responds to pending coach proposal",
			role:     domain.RoleClient,
			proposal: proposalBy(domain.RoleCoach, domain.ReschedulePendingClientAction),
			wantMode: domain.ModeRespondClientToCoach,
		},
		{
			name:     "coach responds to pending client proposal",
			role:     domain.RoleCoach,
			proposal: proposalBy(domain.RoleClient, domain.ReschedulePendingCoachAction),
			wantMode: domain.ModeRespondCoachToClient,
		},
		{
			name:     "coach with no proposal proposes",
			role:     domain.RoleCoach,
			proposal: nil,
			wantMode: domain.ModeProposeCoachInitial,
		},
		{
			name:     "client with no proposal proposes",
			role:     domain.RoleClient,
			proposal: nil,
			wantMode: domain.ModeProposeClientInitial,
		},
		{
			name:          "own pending proposal falls back",
			role:          domain.RoleCoach,
			proposal:      proposalBy(domain.RoleCoach, domain.ReschedulePendingClientAction),
			wantMode:      domain.ModeProposeCoachInitial,
			wantAmbiguous: true,
		},
		{
			name:          "resolved proposal falls back",
			role:          domain.RoleClient,
			proposal:      proposalBy(domain.RoleCoach, domain.RescheduleApproved),
			wantMode:      domain.ModeProposeCoachInitial,
			wantAmbiguous: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeEligibility{}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				BookingID:     1,
				UserID:        200,
				Role:          tt.role,
				Proposal:      tt.proposal,
				BookingStatus: domain.StatusConfirmed,
				Eligibility:   eligible(),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantMode, resp.Mode)
			assert.Equal(t, tt.wantAmbiguous, resp.Ambiguous)
			assert.False(t, resp.OverrideApplied)
		})
	}
}

func TestExecute_OverrideWinsWhenConsistent(t *testing.T) {
	uc := NewUseCase(&fakeEligibility{}, nopLogger{})

	override := domain.ModeClientCounterPropose
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		UserID:      200,
		Role:        domain.RoleClient,
		Proposal:    proposalBy(domain.RoleCoach, domain.ReschedulePendingClientAction),
		Override:    &override,
		Eligibility: eligible(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeClientCounterPropose, resp.Mode)
	assert.True(t, resp.OverrideApplied)
}

func TestExecute_InconsistentOverrideIgnored(t *testing.T) {
	uc := NewUseCase(&fakeEligibility{}, nopLogger{})

	// Override режима ответа без pending-предложения несогласован:
	// игнорируется, работает обычное разрешение
	override := domain.ModeRespondCoachToClient
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1,
		UserID:      100,
		Role:        domain.RoleCoach,
		Override:    &override,
		Eligibility: eligible(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeProposeCoachInitial, resp.Mode)
	assert.False(t, resp.OverrideApplied)
}

func TestExecute_ClientInitialGatedByEligibility(t *testing.T) {
	t.Run("denied with provided result", func(t *testing.T) {
		checker := &fakeEligibility{}
		uc := NewUseCase(checker, nopLogger{})

		reason := domain.ReasonRescheduleLimitReached
		_, err := uc.Execute(context.Background(), &Request{
			BookingID:   1,
			UserID:      200,
			Role:        domain.RoleClient,
			Eligibility: &domain.EligibilityResult{CanReschedule: false, ReasonCode: &reason},
		})
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.Equal(t, 0, checker.calls, "provided result must not trigger an inline check")
	})

	t.Run("inline check when result absent", func(t *testing.T) {
		checker := &fakeEligibility{resp: &checkEligibility.Response{CanReschedule: true}}
		uc := NewUseCase(checker, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			BookingID: 1,
			UserID:    200,
			Role:      domain.RoleClient,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ModeProposeClientInitial, resp.Mode)
		assert.Equal(t, 1, checker.calls)
	})

	t.Run("inline check failure is not assumed eligible", func(t *testing.T) {
		checker := &fakeEligibility{err: errors.New("network down")}
		uc := NewUseCase(checker, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			BookingID: 1,
			UserID:    200,
			Role:      domain.RoleClient,
		})
		assert.ErrorIs(t, err, ErrEligibilityUnavailable)
	})

	t.Run("coach is never gated", func(t *testing.T) {
		checker := &fakeEligibility{err: errors.New("network down")}
		uc := NewUseCase(checker, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			BookingID: 1,
			UserID:    100,
			Role:      domain.RoleCoach,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ModeProposeCoachInitial, resp.Mode)
		assert.Equal(t, 0, checker.calls)
	})
}

func TestExecute_InvalidRole(t *testing.T) {
	uc := NewUseCase(&fakeEligibility{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    200,
		Role:      domain.ActorRole("referee"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
