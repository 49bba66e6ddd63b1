// Package ecs provides [Donburi] integration for pageflip effects.
//
// Attach [FlipComponent] to an entity, start a flip with [Play] and call
// [UpdateFlips] once per frame. Finished flips publish a [FlipCompleted]
// event on [FlipCompletedEventType]:
//
//	entity := world.Create(ecs.FlipComponent)
//	entry := world.Entry(entity)
//	ecs.FlipComponent.SetValue(entry, ecs.NewFlip(effect))
//	ecs.Play(entry, pageflip.NewProgressTween(0, 1, 1.5, ease.OutSine))
//
//	// each frame:
//	ecs.UpdateFlips(world, 1.0/60)
//	ecs.FlipCompletedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
