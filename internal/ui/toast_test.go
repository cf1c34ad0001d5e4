package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasts_ExpireByID(t *testing.T) {
	ts := NewToasts()
	ts.Success("Saving was successfully.")
	ts.Error("Invalid url")

	items := ts.Items()
	require.Len(t, items, 2)
	assert.Equal(t, ToastSuccess, items[0].Level)
	assert.Equal(t, ToastError, items[1].Level)

	ts.Expire(items[0].ID)
	require.Len(t, ts.Items(), 1)
	assert.Equal(t, "Invalid url", ts.Items()[0].Message)

	ts.Expire(999)
	assert.Len(t, ts.Items(), 1)
}

func TestToasts_CapDropsOldest(t *testing.T) {
	ts := NewToasts()
	for _, m := range []string{"one", "two", "three", "four"} {
		ts.Info(m)
	}

	items := ts.Items()
	require.Len(t, items, maxToasts)
	assert.Equal(t, "two", items[0].Message)
	assert.Contains(t, ts.View(), "four")
}

func TestToasts_CommandExpires(t *testing.T) {
	ts := NewToasts()
	ts.TTL = time.Millisecond
	cmd := ts.Error("boom")

	msg, ok := cmd().(toastExpiredMsg)
	require.True(t, ok)
	ts.Expire(msg.ID)
	assert.Empty(t, ts.Items())
	assert.Empty(t, ts.View())
}
