package select_mode

import (
	"context"
	"fmt"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	checkEligibility "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
)

// UseCase use case разрешения режима переговоров
type UseCase struct {
	eligibility EligibilityChecker
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(eligibility EligibilityChecker, logger Logger) *UseCase {
	return &UseCase{
		eligibility: eligibility,
		logger:      logger,
	}
}

// Execute разрешает режим переговоров по порядку:
// 1. Согласованный override выигрывает безусловно
// 2. Клиент при pending-предложении коуча -> respond_client_to_coach
// 3. Коуч при pending-предложении клиента -> respond_coach_to_client
// 4. Коуч без предложения -> propose_coach_initial
// 5. Клиент без предложения -> propose_client_initial (с проверкой права на перенос)
// 6. Иначе fallback propose_coach_initial с предупреждением в логе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	// 1. Явный override: вызывающая сторона (переход из уведомления) уже знает
	// нужный flow. Применяем, только если он согласован с ролью и предложением
	if req.Override != nil {
		if domain.ModeConsistent(*req.Override, req.Role, req.Proposal) {
			uc.logger.Info("SelectMode: booking=%d override %s applied for role=%s",
				req.BookingID, *req.Override, req.Role)
			return &Response{Mode: *req.Override, OverrideApplied: true}, nil
		}
		uc.logger.Warn("SelectMode: booking=%d override %s inconsistent with role=%s, ignored",
			req.BookingID, *req.Override, req.Role)
	}

	proposal := req.Proposal

	// 2-3. Ответ на pending-предложение противоположной стороны
	if req.Role == domain.RoleClient && proposal != nil &&
		proposal.ProposedBy == domain.RoleCoach && proposal.Status == domain.ReschedulePendingClientAction {
		return &Response{Mode: domain.ModeRespondClientToCoach}, nil
	}
	if req.Role == domain.RoleCoach && proposal != nil &&
		proposal.ProposedBy == domain.RoleClient && proposal.Status == domain.ReschedulePendingCoachAction {
		return &Response{Mode: domain.ModeRespondCoachToClient}, nil
	}

	// 4. Коуч без существующего предложения
	if req.Role == domain.RoleCoach && proposal == nil {
		return &Response{Mode: domain.ModeProposeCoachInitial}, nil
	}

	// 5. Клиент без существующего предложения: вход в режим гейтится
	// проверкой права на перенос
	if req.Role == domain.RoleClient && proposal == nil {
		if err := uc.gateClientInitial(ctx, req); err != nil {
			return nil, err
		}
		return &Response{Mode: domain.ModeProposeClientInitial}, nil
	}

	// 6. Неоднозначное состояние (например, pending-предложение собственной
	// стороны): поведение за пределами известных комбинаций не специфицировано
	uc.logger.Warn("SelectMode: ambiguous negotiation state for booking=%d: role=%s, proposal_by=%s, proposal_status=%s, booking_status=%s; falling back to %s",
		req.BookingID, req.Role, proposal.ProposedBy, proposal.Status, req.BookingStatus, domain.ModeProposeCoachInitial)
	return &Response{Mode: domain.ModeProposeCoachInitial, Ambiguous: true}, nil
}

// gateClientInitial проверяет право клиента инициировать перенос.
// Использует переданный результат проверки, либо выполняет её инлайн
func (uc *UseCase) gateClientInitial(ctx context.Context, req *Request) error {
	result := req.Eligibility
	if result == nil {
		resp, err := uc.eligibility.Execute(ctx, &checkEligibility.Request{
			BookingID: req.BookingID,
			UserID:    req.UserID,
		})
		if err != nil {
			uc.logger.Error("SelectMode: inline eligibility check failed for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: %v", ErrEligibilityUnavailable, err)
		}
		result = &domain.EligibilityResult{CanReschedule: resp.CanReschedule, ReasonCode: resp.ReasonCode}
	}

	if !result.CanReschedule {
		reason := "unspecified"
		if result.ReasonCode != nil {
			reason = *result.ReasonCode
		}
		uc.logger.Info("SelectMode: client not eligible to reschedule booking=%d, reason=%s", req.BookingID, reason)
		return fmt.Errorf("%w: %s", ErrNotEligible, reason)
	}
	return nil
}
