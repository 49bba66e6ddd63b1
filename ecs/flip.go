package ecs

import (
	"github.com/phanxgames/pageflip"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Flip is the component data binding an effect to its progress driver.
type Flip struct {
	Effect *pageflip.Effect
	Driver *pageflip.ProgressDriver
	// Tween advances progress every UpdateFlips call. When nil, Progress is
	// left for other systems to set.
	Tween    *pageflip.ProgressTween
	Progress float64

	completed bool
}

// NewFlip returns component data for effect with a default driver.
func NewFlip(effect *pageflip.Effect, opts ...pageflip.DriverOption) Flip {
	return Flip{Effect: effect, Driver: pageflip.NewProgressDriver(opts...)}
}

// FlipComponent is the Donburi component type holding Flip data.
var FlipComponent = donburi.NewComponentType[Flip]()

// FlipCompleted is published once per activation when a flip reaches
// progress 1.
type FlipCompleted struct {
	Entity donburi.Entity
	Params pageflip.EffectParameters
}

// FlipCompletedEventType is the Donburi event type for finished flips.
var FlipCompletedEventType = events.NewEventType[FlipCompleted]()

var flipQuery = donburi.NewQuery(filter.Contains(FlipComponent))

// Play activates the entry's driver and drives it with tween. A nil tween
// leaves progress to be set through the component.
func Play(entry *donburi.Entry, tween *pageflip.ProgressTween) {
	f := FlipComponent.Get(entry)
	if f.Effect == nil || f.Driver == nil {
		return
	}
	f.Driver.Activate(&f.Effect.Params)
	f.Tween = tween
	f.Progress = 0
	if tween != nil {
		f.Progress = tween.Value()
	}
	f.completed = false
}

// Stop deactivates the entry's driver, restoring the baseline according to
// the driver's policy.
func Stop(entry *donburi.Entry) {
	f := FlipComponent.Get(entry)
	if f.Driver == nil {
		return
	}
	f.Driver.Deactivate()
	f.Tween = nil
	f.completed = false
}

// UpdateFlips advances every active flip by dt seconds and recomputes its
// effect parameters.
func UpdateFlips(world donburi.World, dt float32) {
	flipQuery.Each(world, func(entry *donburi.Entry) {
		f := FlipComponent.Get(entry)
		if f.Effect == nil || f.Driver == nil || !f.Driver.IsActive() {
			return
		}
		if f.Tween != nil {
			f.Progress = f.Tween.Update(dt)
		}
		f.Driver.Update(f.Progress, f.Effect.Surface)
		if f.Driver.Progress() >= 1 && !f.completed {
			f.completed = true
			FlipCompletedEventType.Publish(world, FlipCompleted{
				Entity: entry.Entity(),
				Params: f.Effect.Params,
			})
		}
	})
}
