package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache[string, int](time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	now = now.Add(59 * time.Second)
	_, ok = c.Get("a")
	require.True(t, ok)

	now = now.Add(time.Second)
	v, ok = c.Get("a")
	require.False(t, ok)
	require.Zero(t, v)

	_, loaded := c.store.Load("a")
	require.False(t, loaded)
}
