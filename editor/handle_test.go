package editor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/pageflip"
)

func newTestHandle() (*Handle, *pageflip.Effect, *pageflip.ProgressDriver) {
	effect := pageflip.NewEffect(nil, pageflip.Surface{
		Width:         200,
		Height:        100,
		WorldPosition: mgl64.Vec3{10, 20, 5},
	})
	effect.Params = pageflip.EffectParameters{Radius: 50, CylinderAnchor: mgl64.Vec2{0.25, 0.75}, ScrollAngle: 30}
	driver := pageflip.NewProgressDriver()
	return NewHandle(effect, driver), effect, driver
}

func TestHandlePoseRoundTrip(t *testing.T) {
	h, effect, _ := newTestHandle()
	before := effect.Params
	if !h.Drag(h.Pose()) {
		t.Fatal("drag refused on an idle effect")
	}
	got := effect.Params
	if math.Abs(got.Radius-before.Radius) > 1e-9 ||
		!got.CylinderAnchor.ApproxEqualThreshold(before.CylinderAnchor, 1e-9) ||
		math.Abs(got.ScrollAngle-before.ScrollAngle) > 1e-9 {
		t.Errorf("params after round trip = %+v, want %+v", got, before)
	}
}

func TestHandleDragMovesAnchor(t *testing.T) {
	h, effect, _ := newTestHandle()
	pose := h.Pose()
	// One span unit is a tenth of the width.
	pose.Position[0] += 5
	h.Drag(pose)
	if x := effect.Params.CylinderAnchor.X(); math.Abs(x-0.5) > 1e-9 {
		t.Errorf("anchor.x = %v, want 0.5", x)
	}
}

func TestHandleRefusesWhileDriven(t *testing.T) {
	h, effect, driver := newTestHandle()
	called := false
	h.OnChange = func(_, _ pageflip.EffectParameters) { called = true }

	driver.Activate(&effect.Params)
	before := effect.Params
	if h.Editable() {
		t.Error("Editable should be false while the driver is active")
	}
	if h.Drag(pageflip.Pose{Rotation: mgl64.QuatIdent()}) {
		t.Error("Drag accepted while driven")
	}
	if h.SetParams(pageflip.EffectParameters{Radius: 1}) {
		t.Error("SetParams accepted while driven")
	}
	if effect.Params != before || called {
		t.Error("refused edits must leave the effect untouched")
	}

	driver.Deactivate()
	if !h.SetParams(pageflip.EffectParameters{Radius: 1}) {
		t.Error("SetParams refused after deactivation")
	}
}

func TestHandleSetParamsClampsAndNotifies(t *testing.T) {
	h, effect, _ := newTestHandle()
	var gotBefore, gotAfter pageflip.EffectParameters
	h.OnChange = func(before, after pageflip.EffectParameters) {
		gotBefore, gotAfter = before, after
	}
	orig := effect.Params
	h.SetParams(pageflip.EffectParameters{Radius: -3, CylinderAnchor: mgl64.Vec2{-1, 2}, ScrollAngle: 400})

	want := pageflip.EffectParameters{Radius: pageflip.MinRadius, CylinderAnchor: mgl64.Vec2{0, 1}, ScrollAngle: 180}
	if effect.Params != want {
		t.Errorf("params = %+v, want %+v", effect.Params, want)
	}
	if gotBefore != orig || gotAfter != want {
		t.Errorf("OnChange(%+v, %+v)", gotBefore, gotAfter)
	}
}

func TestHandleWithoutDriver(t *testing.T) {
	effect := pageflip.NewEffect(nil, pageflip.Surface{Width: 10, Height: 10})
	h := NewHandle(effect, nil)
	if !h.Editable() || !h.SetParams(pageflip.DefaultEffectParameters()) {
		t.Error("handle without a driver should always be editable")
	}
}
