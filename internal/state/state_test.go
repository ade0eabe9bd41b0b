package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache[[]string](time.Hour).WithClock(func() time.Time { return now })

	c.Set("pune", []string{"Pune, Maharashtra, India"})
	got, ok := c.Get("pune")
	assert.True(t, ok)
	assert.Equal(t, []string{"Pune, Maharashtra, India"}, got)

	now = now.Add(59 * time.Minute)
	_, ok = c.Get("pune")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get("pune")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Purge())
}

func TestCache_Miss(t *testing.T) {
	c := NewCache[int](time.Minute)
	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := NewCache[int](time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("k", i)
			c.Get("k")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
