package handlers

import (
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
)

// SlotModel HTTP модель временного слота
type SlotModel struct {
	Start string `json:"start"` // RFC3339
	End   string `json:"end"`   // RFC3339
}

// RescheduleRequestModel HTTP модель раунда переговоров о переносе
type RescheduleRequestModel struct {
	ID            int64       `json:"id"`
	ProposedBy    string      `json:"proposedBy"`
	ProposedSlots []SlotModel `json:"proposedSlots"`
	Message       string      `json:"message,omitempty"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"createdAt"`
}

// BookingModel HTTP модель бронирования с леджером переносов
type BookingModel struct {
	ID                 int64                    `json:"id"`
	CoachID            int64                    `json:"coachId"`
	ClientID           *int64                   `json:"clientId,omitempty"`
	SessionTypeID      int64                    `json:"sessionTypeId"`
	StartTime          string                   `json:"startTime"`
	EndTime            string                   `json:"endTime"`
	Status             string                   `json:"status"`
	RescheduleRequests []RescheduleRequestModel `json:"rescheduleRequests,omitempty"`
	CreatedAt          string                   `json:"createdAt"`
	UpdatedAt          string                   `json:"updatedAt"`
}

// FromDomainSlot конвертирует доменный слот в HTTP модель
func FromDomainSlot(s domain.Slot) SlotModel {
	return SlotModel{
		Start: s.Start.Format(time.RFC3339),
		End:   s.End.Format(time.RFC3339),
	}
}

// FromDomainSlots конвертирует список доменных слотов в HTTP модели
func FromDomainSlots(slots []domain.Slot) []SlotModel {
	out := make([]SlotModel, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return out
}

// ToDomainSlot парсит HTTP модель слота в доменный слот
func (m SlotModel) ToDomainSlot() (domain.Slot, error) {
	start, err := time.Parse(time.RFC3339, m.Start)
	if err != nil {
		return domain.Slot{}, err
	}
	end, err := time.Parse(time.RFC3339, m.End)
	if err != nil {
		return domain.Slot{}, err
	}
	return domain.Slot{Start: start, End: end}, nil
}

// ToDomainSlots парсит список HTTP моделей слотов
func ToDomainSlots(models []SlotModel) ([]domain.Slot, error) {
	out := make([]domain.Slot, 0, len(models))
	for _, m := range models {
		s, err := m.ToDomainSlot()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// FromDomainRescheduleRequest конвертирует раунд переговоров в HTTP модель
func FromDomainRescheduleRequest(r *domain.RescheduleRequest) RescheduleRequestModel {
	return RescheduleRequestModel{
		ID:            r.ID,
		ProposedBy:    string(r.ProposedBy),
		ProposedSlots: FromDomainSlots(r.ProposedSlots),
		Message:       r.Message,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBooking конвертирует бронирование в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingModel {
	requests := make([]RescheduleRequestModel, 0, len(b.RescheduleRequests))
	for _, r := range b.RescheduleRequests {
		requests = append(requests, FromDomainRescheduleRequest(r))
	}

	return &BookingModel{
		ID:                 b.ID,
		CoachID:            b.CoachID,
		ClientID:           b.ClientID,
		SessionTypeID:      b.SessionTypeID,
		StartTime:          b.Start.Format(time.RFC3339),
		EndTime:            b.End.Format(time.RFC3339),
		Status:             string(b.Status),
		RescheduleRequests: requests,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
