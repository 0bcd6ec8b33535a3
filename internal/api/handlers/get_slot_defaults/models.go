package get_slot_defaults

import (
	"github.com/coachwise/CW-RescheduleService/internal/api/handlers"
)

// ComposeSlotRequest HTTP request model
type ComposeSlotRequest struct {
	CompetingSlots  []handlers.SlotModel `json:"competingSlots,omitempty"`
	UseAvailability bool                 `json:"useAvailability"`
}

// ComposeSlotResponse HTTP response model
type ComposeSlotResponse struct {
	Slot handlers.SlotModel `json:"slot"`

	// ProbeExhausted нефатальное предупреждение: лимит подбора по
	// availability исчерпан, слот может конфликтовать с расписанием коуча
	ProbeExhausted bool `json:"probeExhausted"`
}

// AddSlotHTTPRequest HTTP request model
type AddSlotHTTPRequest struct {
	Slots []handlers.SlotModel `json:"slots"`
}

// AddSlotHTTPResponse HTTP response model
type AddSlotHTTPResponse struct {
	Slots []handlers.SlotModel `json:"slots"`
	Added bool                 `json:"added"`
}
