package querycache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	c := New()

	_, hit := c.Get("missing")
	assert.False(t, hit)

	c.Set("k", []byte(`{"a":1}`))
	got, hit := c.Get("k")
	require.True(t, hit)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestCacheCopySemantics(t *testing.T) {
	c := New()

	src := []byte("original")
	c.Set("k", src)
	src[0] = 'X'

	got, hit := c.Get("k")
	require.True(t, hit)
	assert.Equal(t, []byte("original"), got, "cache must not alias caller's slice")

	// Мутация возвращенного значения не должна трогать кэш
	got[0] = 'Y'
	again, _ := c.Get("k")
	assert.Equal(t, []byte("original"), again)
}

func TestCacheGetJSON(t *testing.T) {
	c := New()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, c.SetJSON("k", payload{Name: "alpha"}))

	var out payload
	hit, err := c.GetJSON("k", &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "alpha", out.Name)

	hit, err = c.GetJSON("missing", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	c.Set("broken", []byte("{not json"))
	_, err = c.GetJSON("broken", &out)
	assert.Error(t, err)
}

func TestTxRollbackRestoresBytes(t *testing.T) {
	c := New()

	before := []byte(`{"status":"confirmed","slots":[{"start":"2026-03-12T10:00:00Z"}]}`)
	c.Set("booking/7", before)

	tx := c.Begin("booking/7", "notifications")

	// Оптимистичная мутация: меняем существующий ключ и создаем новый
	c.Set("booking/7", []byte(`{"status":"pending_reschedule_client_request"}`))
	c.Set("notifications", []byte(`[]`))

	tx.Rollback()

	got, hit := c.Get("booking/7")
	require.True(t, hit)
	assert.Equal(t, before, got, "rollback must restore the exact prior bytes")

	_, hit = c.Get("notifications")
	assert.False(t, hit, "keys absent at Begin must be deleted on rollback")
}

func TestTxCommitKeepsChanges(t *testing.T) {
	c := New()
	c.Set("k", []byte("old"))

	tx := c.Begin("k")
	c.Set("k", []byte("new"))
	tx.Commit()

	// Rollback после Commit - no-op
	tx.Rollback()

	got, hit := c.Get("k")
	require.True(t, hit)
	assert.Equal(t, []byte("new"), got)
}

func TestTxRollbackIdempotent(t *testing.T) {
	c := New()
	c.Set("k", []byte("old"))

	tx := c.Begin("k")
	c.Set("k", []byte("new"))
	tx.Rollback()

	// Повторная мутация между откатами не должна быть затерта вторым Rollback
	c.Set("k", []byte("after"))
	tx.Rollback()

	got, _ := c.Get("k")
	assert.Equal(t, []byte("after"), got)
}

func TestInvalidate(t *testing.T) {
	c := New()
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3"))

	c.Invalidate("a", "c", "missing")

	_, hit := c.Get("a")
	assert.False(t, hit)
	_, hit = c.Get("c")
	assert.False(t, hit)
	_, hit = c.Get("b")
	assert.True(t, hit)
}

func TestBookingKey(t *testing.T) {
	assert.Equal(t, "booking/42", BookingKey(42))
}
