package querycache

import "fmt"

// Ключи кэша, разделяемые всеми компонентами
const (
	KeyBookings       = "bookings"
	KeyNotifications  = "notifications"
	KeyCoachDashboard = "coachDashboard"
)

// BookingKey возвращает ключ кэша для одного бронирования
func BookingKey(bookingID int64) string {
	return fmt.Sprintf("booking/%d", bookingID)
}
