// Package editor connects pageflip effects to an interactive editing tool.
// A tool draws a manipulable handle at Handle.Pose, forwards drags to
// Handle.Drag and inspector edits to Handle.SetParams. Edits are refused
// while a ProgressDriver owns the effect.
package editor

import (
	"github.com/phanxgames/pageflip"
	"go.uber.org/zap"
)

// Handle is the editing adapter for one effect.
type Handle struct {
	effect *pageflip.Effect
	driver *pageflip.ProgressDriver

	// OnChange, when set, is called after every accepted edit. Tools use it
	// to record undo steps and redraw their inspector.
	OnChange func(before, after pageflip.EffectParameters)
}

// NewHandle creates a handle for effect. driver may be nil when the effect
// is never progress-driven.
func NewHandle(effect *pageflip.Effect, driver *pageflip.ProgressDriver) *Handle {
	return &Handle{effect: effect, driver: driver}
}

// Editable reports whether edits are currently accepted.
func (h *Handle) Editable() bool {
	return h.driver == nil || !h.driver.IsActive()
}

// Pose returns where the handle should be drawn.
func (h *Handle) Pose() pageflip.Pose {
	return pageflip.ToPose(h.effect.Params, h.effect.Surface)
}

// Drag applies a handle pose moved by the user. It reports false, leaving
// the effect untouched, when edits are not accepted.
func (h *Handle) Drag(pose pageflip.Pose) bool {
	if !h.Editable() {
		pageflip.Logger().Debug("handle drag ignored while progress driver is active")
		return false
	}
	h.commit(pageflip.FromPose(pose, h.effect.Surface))
	return true
}

// SetParams applies parameters typed into an inspector, clamped into range.
// It reports false when edits are not accepted.
func (h *Handle) SetParams(p pageflip.EffectParameters) bool {
	if !h.Editable() {
		return false
	}
	h.commit(p.Clamp())
	return true
}

func (h *Handle) commit(p pageflip.EffectParameters) {
	before := h.effect.Params
	h.effect.Params = p
	pageflip.Logger().Debug("effect edited",
		zap.Float64("radius", p.Radius),
		zap.Float64("anchorX", p.CylinderAnchor.X()),
		zap.Float64("anchorY", p.CylinderAnchor.Y()),
		zap.Float64("scrollAngle", p.ScrollAngle))
	if h.OnChange != nil {
		h.OnChange(before, p)
	}
}
