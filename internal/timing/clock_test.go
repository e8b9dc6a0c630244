package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManualClock(t *testing.T) {
	c := NewManualClock()
	assert.Equal(t, time.Duration(0), c.Now())

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.Now())

	c.Advance(time.Second)
	assert.Equal(t, 1250*time.Millisecond, c.Now())

	// Now is stable between advances.
	assert.Equal(t, c.Now(), c.Now())
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, a, time.Duration(0))
}
