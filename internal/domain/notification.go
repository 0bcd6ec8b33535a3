package domain

import "time"

// NotificationStatus represents the read/actioned state of a notification
type NotificationStatus string

const (
	NotificationUnread   NotificationStatus = "unread"
	NotificationRead     NotificationStatus = "read"
	NotificationActioned NotificationStatus = "actioned"
)

// Notification типы, связанные с переговорами о переносе
const (
	NotificationBookingRequested  = "booking_requested"
	NotificationRescheduleRequest = "reschedule_request"
	NotificationRescheduleOutcome = "reschedule_outcome"
)

// Notification is a delivered platform notification as cached locally.
// Delivery and transport are owned by the notification service; this core
// only reads the list and projects actioned state optimistically.
type Notification struct {
	ID        int64
	UserID    int64
	Type      string
	BookingID int64
	Status    NotificationStatus
	CreatedAt time.Time
}

// IsActionable returns true while the notification still expects a user action
func (n *Notification) IsActionable() bool {
	return n.Status != NotificationActioned
}
