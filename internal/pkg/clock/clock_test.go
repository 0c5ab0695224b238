//go:build unit

package clock_test

import (
	"testing"
	"time"

	"frontdesk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMidnight(t *testing.T) {
	t.Run("drops the time of day", func(t *testing.T) {
		in := time.Date(2026, 9, 1, 18, 45, 12, 999, time.UTC)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), clock.Midnight(in))
	})

	t.Run("converts to UTC before truncating", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		assert.NoError(t, err)

		// 08:00 on Sep 2 in Tokyo is still Sep 1 in UTC.
		in := time.Date(2026, 9, 2, 8, 0, 0, 0, tokyo)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), clock.Midnight(in))
	})
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), c.Today())

	c.Add(15 * time.Hour)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), c.Today())

	c.Set(start.AddDate(0, 1, 0))
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), c.Today())
}
