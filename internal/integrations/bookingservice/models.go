package bookingservice

import (
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// SlotModel слот в формате booking-сервиса
type SlotModel struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RescheduleRequestModel запрос на перенос в формате booking-сервиса
type RescheduleRequestModel struct {
	ID            int64       `json:"id"`
	ProposedBy    string      `json:"proposedBy"`
	ProposedSlots []SlotModel `json:"proposedSlots"`
	Message       string      `json:"message,omitempty"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// BookingModel бронирование в формате booking-сервиса
type BookingModel struct {
	ID                 int64                     `json:"id"`
	CoachID            int64                     `json:"coachId"`
	ClientID           *int64                    `json:"clientId,omitempty"`
	SessionTypeID      int64                     `json:"sessionTypeId"`
	Start              time.Time                 `json:"startTime"`
	End                time.Time                 `json:"endTime"`
	Status             string                    `json:"status"`
	RescheduleRequests []*RescheduleRequestModel `json:"rescheduleRequests,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// EligibilityModel ответ проверки права на перенос
type EligibilityModel struct {
	CanReschedule bool    `json:"canReschedule"`
	ReasonCode    *string `json:"reasonCode,omitempty"`
}

// NotificationModel уведомление в формате booking-сервиса
type NotificationModel struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	BookingID int64     `json:"bookingId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AvailabilityRequest параметры запроса availability-данных коуча
type AvailabilityRequest struct {
	CoachID   int64
	BookingID int64
	Start     time.Time
	End       time.Time
	Month     int
	Year      int
}

// ClientRescheduleRequest тело запроса requestRescheduleByClient
type ClientRescheduleRequest struct {
	ProposedSlots  []SlotModel `json:"proposedSlots"`
	RequestMessage string      `json:"requestMessage,omitempty"`
}

// CoachRescheduleProposal тело запроса proposeRescheduleByCoach
type CoachRescheduleProposal struct {
	ProposedSlots []SlotModel `json:"proposedSlots"`
	Reason        string      `json:"reason,omitempty"`
}

// Допустимые действия ответа на запрос переноса
const (
	ActionApprove        = "approve"
	ActionDecline        = "decline"
	ActionCounterPropose = "counter_propose"
)

// CoachRescheduleResponse тело запроса respondToRescheduleRequestByCoach
// Вариант действия задается явным полем Action: никакого угадывания намерения
// по комбинации заполненных опциональных полей
type CoachRescheduleResponse struct {
	RequestID          int64       `json:"requestId"`
	Action             string      `json:"action"`
	SelectedTime       *SlotModel  `json:"selectedTime,omitempty"`
	CoachMessage       string      `json:"coachMessage,omitempty"`
	CoachProposedTimes []SlotModel `json:"coachProposedTimes,omitempty"`
}

// ClientRescheduleResponse тело запроса respondToRescheduleRequestByClient
type ClientRescheduleResponse struct {
	RequestID     int64       `json:"requestId"`
	Action        string      `json:"action"`
	SelectedTime  *SlotModel  `json:"selectedTime,omitempty"`
	ClientMessage string      `json:"clientMessage,omitempty"`
	ProposedSlots []SlotModel `json:"proposedSlots,omitempty"`
}

// DeclineBookingRequest тело запроса отклонения бронирования коучем
type DeclineBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки booking-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Конвертация моделей в domain

// ToDomain конвертирует слот в domain-модель
func (m SlotModel) ToDomain() domain.Slot {
	return domain.Slot{Start: m.Start, End: m.End}
}

// FromDomainSlot конвертирует domain-слот в модель booking-сервиса
func FromDomainSlot(s domain.Slot) SlotModel {
	return SlotModel{Start: s.Start, End: s.End}
}

// FromDomainSlots конвертирует список domain-слотов
func FromDomainSlots(slots []domain.Slot) []SlotModel {
	result := make([]SlotModel, len(slots))
	for i, s := range slots {
		result[i] = FromDomainSlot(s)
	}
	return result
}

// ToDomain конвертирует запрос на перенос в domain-модель
func (m *RescheduleRequestModel) ToDomain() *domain.RescheduleRequest {
	slots := make([]domain.Slot, len(m.ProposedSlots))
	for i, s := range m.ProposedSlots {
		slots[i] = s.ToDomain()
	}
	return &domain.RescheduleRequest{
		ID:            m.ID,
		ProposedBy:    domain.ActorRole(m.ProposedBy),
		ProposedSlots: slots,
		Message:       m.Message,
		Status:        domain.RescheduleStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomain конвертирует бронирование в domain-модель
func (m *BookingModel) ToDomain() *domain.Booking {
	requests := make([]*domain.RescheduleRequest, len(m.RescheduleRequests))
	for i, r := range m.RescheduleRequests {
		requests[i] = r.ToDomain()
	}
	return &domain.Booking{
		ID:                 m.ID,
		CoachID:            m.CoachID,
		ClientID:           m.ClientID,
		SessionTypeID:      m.SessionTypeID,
		Start:              m.Start,
		End:                m.End,
		Status:             domain.BookingStatus(m.Status),
		RescheduleRequests: requests,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToDomain конвертирует уведомление в domain-модель
func (m *NotificationModel) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		BookingID: m.BookingID,
		Status:    domain.NotificationStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
