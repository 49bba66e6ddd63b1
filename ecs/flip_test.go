package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/pageflip"

	"github.com/yohamta/donburi"
)

func newFlipEntry(t *testing.T, world donburi.World) *donburi.Entry {
	t.Helper()
	effect := pageflip.NewEffect(nil, pageflip.Surface{Width: 200, Height: 100})
	effect.Params = pageflip.EffectParameters{Radius: 50, ScrollAngle: 30}
	entry := world.Entry(world.Create(FlipComponent))
	FlipComponent.SetValue(entry, NewFlip(effect))
	return entry
}

func TestUpdateFlipsDrivesParams(t *testing.T) {
	world := donburi.NewWorld()
	entry := newFlipEntry(t, world)

	Play(entry, nil)
	f := FlipComponent.Get(entry)
	f.Progress = 0.5
	UpdateFlips(world, 1.0/60)

	p := f.Effect.Params
	if math.Abs(p.Radius-50) > 1e-9 {
		t.Errorf("Radius = %v, want 50", p.Radius)
	}
	if math.Abs(p.CylinderAnchor.Y()-0.75) > 1e-9 {
		t.Errorf("anchor.y = %v, want 0.75", p.CylinderAnchor.Y())
	}
	if math.Abs(p.ScrollAngle-7.5) > 1e-9 {
		t.Errorf("ScrollAngle = %v, want 7.5", p.ScrollAngle)
	}
}

func TestUpdateFlipsSkipsInactive(t *testing.T) {
	world := donburi.NewWorld()
	entry := newFlipEntry(t, world)

	f := FlipComponent.Get(entry)
	f.Progress = 1
	UpdateFlips(world, 1.0/60)

	if f.Effect.Params.Radius != 50 {
		t.Errorf("inactive flip changed radius to %v", f.Effect.Params.Radius)
	}
}

func TestFlipCompletedPublishedOnce(t *testing.T) {
	world := donburi.NewWorld()
	entry := newFlipEntry(t, world)

	var received []FlipCompleted
	FlipCompletedEventType.Subscribe(world, func(w donburi.World, e FlipCompleted) {
		received = append(received, e)
	})

	Play(entry, pageflip.NewProgressTween(0, 1, 1, nil))
	// Run for full duration using exact halves to avoid float32 accumulation drift.
	UpdateFlips(world, 0.5)
	UpdateFlips(world, 0.5)
	UpdateFlips(world, 0.5)
	FlipCompletedEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Entity != entry.Entity() {
		t.Errorf("event entity = %v, want %v", received[0].Entity, entry.Entity())
	}
	if received[0].Params.Radius != pageflip.MinRadius {
		t.Errorf("event radius = %v, want %v", received[0].Params.Radius, pageflip.MinRadius)
	}
}

func TestStopRevertsBaseline(t *testing.T) {
	world := donburi.NewWorld()
	entry := newFlipEntry(t, world)

	Play(entry, pageflip.NewProgressTween(0, 1, 1, nil))
	UpdateFlips(world, 1)
	Stop(entry)

	f := FlipComponent.Get(entry)
	if f.Driver.IsActive() {
		t.Error("driver should be inactive after Stop")
	}
	if f.Effect.Params.Radius != 50 || f.Effect.Params.ScrollAngle != 30 {
		t.Errorf("params = %+v, want baseline radius 50 angle 30", f.Effect.Params)
	}
}
