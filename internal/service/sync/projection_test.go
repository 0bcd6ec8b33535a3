package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
)

func TestProjectBooking(t *testing.T) {
	cache := querycache.New()
	require.NoError(t, cache.SetJSON(querycache.BookingKey(1), &domain.Booking{
		ID:     1,
		Status: domain.StatusRequested,
	}))

	err := ProjectBooking(cache, 1, func(b *domain.Booking) {
		b.Status = domain.StatusConfirmed
	})
	require.NoError(t, err)

	var got domain.Booking
	hit, err := cache.GetJSON(querycache.BookingKey(1), &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestProjectBooking_NoopWhenUncached(t *testing.T) {
	cache := querycache.New()

	called := false
	err := ProjectBooking(cache, 1, func(b *domain.Booking) { called = true })
	require.NoError(t, err)
	assert.False(t, called)

	_, hit := cache.Get(querycache.BookingKey(1))
	assert.False(t, hit, "projection must not materialize a cache entry")
}

func TestProjectBooking_CorruptedEntry(t *testing.T) {
	cache := querycache.New()
	cache.Set(querycache.BookingKey(1), []byte("{nope"))

	err := ProjectBooking(cache, 1, func(b *domain.Booking) {})
	assert.Error(t, err)
}

func TestProjectNotificationsActioned(t *testing.T) {
	cache := querycache.New()
	require.NoError(t, cache.SetJSON(querycache.KeyNotifications, []*domain.Notification{
		{ID: 1, BookingID: 7, Status: domain.NotificationUnread},
		{ID: 2, BookingID: 7, Status: domain.NotificationRead},
		{ID: 3, BookingID: 7, Status: domain.NotificationActioned},
		{ID: 4, BookingID: 8, Status: domain.NotificationUnread},
	}))

	require.NoError(t, ProjectNotificationsActioned(cache, 7))

	var got []*domain.Notification
	hit, err := cache.GetJSON(querycache.KeyNotifications, &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 4)

	assert.Equal(t, domain.NotificationActioned, got[0].Status)
	assert.Equal(t, domain.NotificationActioned, got[1].Status)
	assert.Equal(t, domain.NotificationActioned, got[2].Status)
	assert.Equal(t, domain.NotificationUnread, got[3].Status, "other bookings' notifications stay untouched")
}

func TestProjectNotificationsActioned_NoopWhenUncached(t *testing.T) {
	cache := querycache.New()

	require.NoError(t, ProjectNotificationsActioned(cache, 7))

	_, hit := cache.Get(querycache.KeyNotifications)
	assert.False(t, hit)
}
