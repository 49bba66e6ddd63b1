package pageflip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressTween plays a progress value from one end to the other over time.
// Call Update(dt) each frame and feed Value to ProgressDriver.Update. The
// easing here shapes timing along the whole flip; the driver's own EaseFunc
// only shapes the angle blend during the rolling phase.
//
// There is no global animation manager; callers update tweens themselves.
type ProgressTween struct {
	tween    *gween.Tween
	from, to float64
	value    float64
	Done     bool
}

// NewProgressTween creates a tween from from to to (both clamped to [0, 1])
// over duration seconds. A nil fn is linear.
func NewProgressTween(from, to float64, duration float32, fn ease.TweenFunc) *ProgressTween {
	if fn == nil {
		fn = ease.Linear
	}
	from, to = Clamp01(from), Clamp01(to)
	return &ProgressTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		from:  from,
		to:    to,
		value: from,
	}
}

// Update advances the tween by dt seconds and returns the new progress.
// Once the end is reached Done is set and the value stays at the end.
func (t *ProgressTween) Update(dt float32) float64 {
	if t.Done {
		return t.value
	}
	val, finished := t.tween.Update(dt)
	t.value = Clamp01(float64(val))
	if finished {
		t.value = t.to
		t.Done = true
	}
	return t.value
}

// Value returns the current progress.
func (t *ProgressTween) Value() float64 { return t.value }

// Reset rewinds the tween to its start.
func (t *ProgressTween) Reset() {
	t.tween.Reset()
	t.value = t.from
	t.Done = false
}

// Reverse returns a new tween playing from the current value back to the
// start over duration seconds.
func (t *ProgressTween) Reverse(duration float32, fn ease.TweenFunc) *ProgressTween {
	return NewProgressTween(t.value, t.from, duration, fn)
}
