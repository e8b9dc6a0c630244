package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"neonsigil/internal/config"
	"neonsigil/internal/timing"
)

func TestNewAppMountsComponents(t *testing.T) {
	app := NewApp(zap.NewNop(), timing.NewManualClock(), config.DefaultOrnament())

	assert.True(t, app.mandala.Mounted())
	require.Len(t, app.ornaments, ornamentCount)
	for i, o := range app.ornaments {
		assert.True(t, o.Mounted(), "ornament %d", i)
	}
}

func TestOrnamentPlacementRotations(t *testing.T) {
	base := config.DefaultOrnament()
	base.Rotation = 0.5
	app := NewApp(zap.NewNop(), timing.NewManualClock(), base)

	// Each slot faces outward: base rotation plus its placement angle plus
	// a quarter turn, stepping by 2π/8 around the circle.
	for k, o := range app.ornaments {
		want := 0.5 + app.placementAngle(k) + math.Pi/2
		assert.InDelta(t, want, o.Config().Rotation, 1e-9, "slot %d", k)
	}

	step := app.ornaments[1].Config().Rotation - app.ornaments[0].Config().Rotation
	assert.InDelta(t, math.Pi/4, step, 1e-9)
}

func TestPlacementAngles(t *testing.T) {
	app := NewApp(zap.NewNop(), timing.NewManualClock(), config.DefaultOrnament())

	assert.InDelta(t, -math.Pi/2, app.placementAngle(0), 1e-9, "slot 0 at twelve o'clock")
	assert.InDelta(t, 0, app.placementAngle(2), 1e-9, "slot 2 at three o'clock")
	assert.InDelta(t, math.Pi/2, app.placementAngle(4), 1e-9, "slot 4 at six o'clock")
}

func TestApplyConfigRestartsAllOrnaments(t *testing.T) {
	clock := timing.NewManualClock()
	app := NewApp(zap.NewNop(), clock, config.DefaultOrnament())

	clock.Advance(1000)
	for _, o := range app.ornaments {
		o.Update()
	}

	app.cfg.Pulse = true
	app.applyConfig()

	for i, o := range app.ornaments {
		assert.True(t, o.Mounted(), "ornament %d stays mounted", i)
		assert.Zero(t, o.Frames(), "ornament %d chain restarted", i)
		assert.True(t, o.Config().Pulse, "ornament %d got new config", i)
	}
}
