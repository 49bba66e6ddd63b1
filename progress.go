package pageflip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// FlipBaseline is the state captured when a ProgressDriver activates. The
// whole flip animation is computed relative to it.
type FlipBaseline struct {
	InitialRadius      float64
	InitialScrollAngle float64
}

// Direction is the axis a flip travels along. Exactly one of Horizontal and
// Vertical is non-zero (+1 or -1), except on a degenerate surface where
// both are zero.
type Direction struct {
	Horizontal int
	Vertical   int
}

// ClassifyDirection picks the travel axis from the baseline scroll angle and
// the surface's aspect ratio. Angles pointing within the surface diagonal of
// straight up flip vertically forward, those within the diagonal of straight
// down flip vertically backward, and everything else flips horizontally
// toward the sign of the angle.
//
// A surface with zero width or height has no axis to travel along and gets
// the zero Direction.
func ClassifyDirection(initialScrollAngle float64, s Surface) Direction {
	if s.Degenerate() {
		return Direction{}
	}
	imageRad := math.Atan2(s.Width, s.Height)
	absScrollRad := math.Abs(mgl64.DegToRad(initialScrollAngle))

	var d Direction
	switch {
	case absScrollRad < imageRad:
		d.Vertical = 1
	case absScrollRad > math.Pi-imageRad:
		d.Vertical = -1
	default:
		d.Horizontal = 1
		if initialScrollAngle <= 0 {
			d.Horizontal = -1
		}
	}
	return d
}

// rectLength is the distance the cylinder rolls across the surface.
func (d Direction) rectLength(s Surface) float64 {
	return math.Abs(float64(d.Horizontal))*s.Width + math.Abs(float64(d.Vertical))*s.Height
}

// targetScrollAngle is the angle the flip axis ends at.
func (d Direction) targetScrollAngle() float64 {
	if d.Horizontal != 0 {
		return float64(d.Horizontal) * 90
	}
	return float64(d.Vertical-1) * 90
}

// Evaluate computes the effect parameters for progress (clamped to [0, 1])
// along the flip described by baseline on surface s.
//
// The flip runs over a length of InitialRadius plus the surface extent along
// the travel axis. During the first part, the rolling phase, the anchor
// slides from its starting edge to the far edge at constant radius while the
// angle eases toward the target. During the rest, the shrinking phase, the
// anchor stays on the far edge and the radius collapses to MinRadius. Both
// phases agree at the boundary as long as ease(1) == 1.
//
// On a degenerate surface only the shrinking phase runs, at the starting
// anchor, with the angle held at the baseline.
//
// Evaluate is pure. A nil ease is linear.
func Evaluate(progress float64, baseline FlipBaseline, s Surface, ease EaseFunc) EffectParameters {
	if ease == nil {
		ease = Linear
	}
	dir := ClassifyDirection(baseline.InitialScrollAngle, s)
	absScrollRad := math.Abs(mgl64.DegToRad(baseline.InitialScrollAngle))

	rectLength := dir.rectLength(s)
	totalLength := baseline.InitialRadius + rectLength
	currentLength := Clamp01(progress) * totalLength

	target := dir.targetScrollAngle()
	if dir == (Direction{}) {
		target = baseline.InitialScrollAngle
	}

	anchor := mgl64.Vec2{1, 1}
	if baseline.InitialScrollAngle > 0 {
		anchor[0] = 0
	}
	if absScrollRad <= math.Pi/2 {
		anchor[1] = 0
	}

	var p EffectParameters
	if currentLength < rectLength {
		// Rolling phase.
		t := currentLength / rectLength
		p.Radius = baseline.InitialRadius
		if dir.Horizontal != 0 {
			anchor[0] = travel(dir.Horizontal, t)
		} else {
			anchor[1] = travel(dir.Vertical, t)
		}
		p.ScrollAngle = lerp(baseline.InitialScrollAngle, target, ease(t))
	} else {
		// Shrinking phase.
		p.Radius = baseline.InitialRadius - (currentLength - rectLength)
		switch {
		case dir.Horizontal != 0:
			anchor[0] = travel(dir.Horizontal, 1)
		case dir.Vertical != 0:
			anchor[1] = travel(dir.Vertical, 1)
		}
		p.ScrollAngle = target
	}
	p.CylinderAnchor = anchor
	return p.Clamp()
}

// travel returns the anchor coordinate after moving t of the way across the
// unit range in direction dir.
func travel(dir int, t float64) float64 {
	if dir < 0 {
		return 1 - t
	}
	return t
}

// DriverOption configures a ProgressDriver.
type DriverOption func(*ProgressDriver)

// WithEase sets the curve used to blend the scroll angle during the rolling
// phase. nil selects Linear.
func WithEase(fn EaseFunc) DriverOption {
	return func(d *ProgressDriver) {
		if fn == nil {
			fn = Linear
		}
		d.ease = fn
	}
}

// WithRevertOnDeactivate controls whether Deactivate restores the baseline
// radius and scroll angle on the target.
func WithRevertOnDeactivate(revert bool) DriverOption {
	return func(d *ProgressDriver) {
		d.revertOnDeactivate = revert
	}
}

// ProgressDriver animates an effect's parameters from a single progress
// value. It is Inactive until Activate captures a baseline from the target
// parameters; while Active every Update rewrites the target from the
// progress, the baseline and the surface alone, so repeated updates with
// the same inputs give the same result.
//
// Editing the target by other means while the driver is active is
// pointless, since the next Update overwrites it. Editors should check
// IsActive and refuse edits.
type ProgressDriver struct {
	ease               EaseFunc
	revertOnDeactivate bool

	target   *EffectParameters
	baseline FlipBaseline
	active   bool
	progress float64

	degenerateLogged bool
}

// NewProgressDriver creates an inactive driver. By default the angle blend
// is linear and Deactivate reverts the target to its baseline.
func NewProgressDriver(opts ...DriverOption) *ProgressDriver {
	d := &ProgressDriver{ease: Linear, revertOnDeactivate: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetEase replaces the angle blend curve. nil selects Linear.
func (d *ProgressDriver) SetEase(fn EaseFunc) {
	WithEase(fn)(d)
}

// SetRevertOnDeactivate changes the deactivation policy.
func (d *ProgressDriver) SetRevertOnDeactivate(revert bool) {
	d.revertOnDeactivate = revert
}

// RevertOnDeactivate reports the deactivation policy.
func (d *ProgressDriver) RevertOnDeactivate() bool { return d.revertOnDeactivate }

// Activate binds the driver to target and captures its radius and scroll
// angle as the baseline. Activating an active driver rebinds it and
// recaptures the baseline without reverting the previous target.
func (d *ProgressDriver) Activate(target *EffectParameters) {
	if target == nil {
		return
	}
	d.target = target
	d.baseline = FlipBaseline{
		InitialRadius:      target.Radius,
		InitialScrollAngle: target.ScrollAngle,
	}
	d.active = true
	d.progress = 0
	d.degenerateLogged = false
	Logger().Debug("progress driver activated",
		zap.Float64("radius", d.baseline.InitialRadius),
		zap.Float64("scrollAngle", d.baseline.InitialScrollAngle))
}

// Deactivate returns the driver to Inactive. When the revert policy is on,
// the target's radius and scroll angle are restored from the baseline; the
// anchor is left where the last Update put it. Deactivating an inactive
// driver does nothing.
func (d *ProgressDriver) Deactivate() {
	if !d.active {
		return
	}
	if d.revertOnDeactivate {
		d.target.Radius = d.baseline.InitialRadius
		d.target.ScrollAngle = d.baseline.InitialScrollAngle
	}
	Logger().Debug("progress driver deactivated",
		zap.Bool("reverted", d.revertOnDeactivate),
		zap.Float64("progress", d.progress))
	d.active = false
	d.target = nil
	d.baseline = FlipBaseline{}
	d.progress = 0
}

// IsActive reports whether the driver currently owns its target.
func (d *ProgressDriver) IsActive() bool { return d.active }

// Baseline returns the captured baseline and whether the driver is active.
func (d *ProgressDriver) Baseline() (FlipBaseline, bool) {
	return d.baseline, d.active
}

// Progress returns the progress passed to the last Update, clamped to [0, 1].
func (d *ProgressDriver) Progress() float64 { return d.progress }

// Update recomputes the target parameters for progress on surface s. It
// does nothing while the driver is inactive.
func (d *ProgressDriver) Update(progress float64, s Surface) {
	if !d.active {
		return
	}
	if s.Degenerate() && !d.degenerateLogged {
		d.degenerateLogged = true
		Logger().Debug("degenerate surface, flip shrinks in place",
			zap.Float64("width", s.Width), zap.Float64("height", s.Height))
	}
	d.progress = Clamp01(progress)
	*d.target = Evaluate(d.progress, d.baseline, s, d.ease)
}
