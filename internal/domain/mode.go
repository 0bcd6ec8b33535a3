package domain

// NegotiationMode is the resolved negotiation flow for the current user.
// Not persisted: recomputed from role and ledger state on every resolution.
type NegotiationMode string

const (
	ModeProposeCoachInitial           NegotiationMode = "propose_coach_initial"
	ModeProposeClientInitial          NegotiationMode = "propose_client_initial"
	ModeRespondClientToCoach          NegotiationMode = "respond_client_to_coach"
	ModeRespondCoachToClient          NegotiationMode = "respond_coach_to_client"
	ModeCoachSelectFromClientProposal NegotiationMode = "coach_select_from_client_proposal"
	ModeCoachCounterPropose           NegotiationMode = "coach_counter_propose"
	ModeClientSelectFromCoachProposal NegotiationMode = "client_select_from_coach_proposal"
	ModeClientCounterPropose          NegotiationMode = "client_counter_propose"
)

// AllNegotiationModes перечисляет все допустимые режимы переговоров
var AllNegotiationModes = []NegotiationMode{
	ModeProposeCoachInitial,
	ModeProposeClientInitial,
	ModeRespondClientToCoach,
	ModeRespondCoachToClient,
	ModeCoachSelectFromClientProposal,
	ModeCoachCounterPropose,
	ModeClientSelectFromCoachProposal,
	ModeClientCounterPropose,
}

// IsValid returns true if the mode belongs to the closed mode set
func (m NegotiationMode) IsValid() bool {
	for _, known := range AllNegotiationModes {
		if m == known {
			return true
		}
	}
	return false
}

// Role возвращает роль, которой принадлежит режим
func (m NegotiationMode) Role() ActorRole {
	switch m {
	case ModeProposeCoachInitial, ModeRespondCoachToClient,
		ModeCoachSelectFromClientProposal, ModeCoachCounterPropose:
		return RoleCoach
	default:
		return RoleClient
	}
}

// RequiresPendingProposal returns true for modes that only make sense while a
// cross-party proposal awaits this role's response
func (m NegotiationMode) RequiresPendingProposal() bool {
	switch m {
	case ModeRespondClientToCoach, ModeRespondCoachToClient,
		ModeCoachSelectFromClientProposal, ModeCoachCounterPropose,
		ModeClientSelectFromCoachProposal, ModeClientCounterPropose:
		return true
	default:
		return false
	}
}

// ModeConsistent проверяет, что явный override режима согласован с текущей
// ролью и состоянием pending-предложения. Используется при переходе из
// уведомления, когда вызывающая сторона уже знает нужный flow.
func ModeConsistent(mode NegotiationMode, role ActorRole, proposal *RescheduleRequest) bool {
	if !mode.IsValid() || mode.Role() != role {
		return false
	}

	if !mode.RequiresPendingProposal() {
		return true
	}

	// Режимы ответа требуют pending-предложения от противоположной стороны,
	// ожидающего действия именно этой роли
	if proposal == nil || proposal.ProposedBy != role.Other() {
		return false
	}
	pendingFor, ok := proposal.PendingFor()
	return ok && pendingFor == role
}
