// Package scene holds the two view components and the host shell that
// composites them: MandalaBase fills the viewport with concentric rings,
// Ornament draws a neon sigil on its own backing surface. Each component
// owns a mount/unmount lifecycle; an unmounted component never touches a
// surface or advances its animation.
package scene

import (
	"time"

	"neonsigil/internal/timing"
)

// lifecycle is the shared mount state. The mounted flag doubles as the
// cancellation handle for the per-frame chain: Update and Draw both check it
// first, so once end() runs no further frame does any work. A component is
// remounted by calling begin() again, which starts a fresh chain (frame
// counter and phase reset); there is never more than one chain because the
// state is a single flag, not a goroutine.
type lifecycle struct {
	mounted   bool
	mountedAt time.Duration
	frames    uint64
}

func (l *lifecycle) begin(c timing.Clock) {
	l.mounted = true
	l.mountedAt = c.Now()
	l.frames = 0
}

func (l *lifecycle) end() {
	l.mounted = false
}
