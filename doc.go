// Package pageflip renders a page-curl effect for [Ebitengine]: a flat
// rectangle is wrapped around a virtual cylinder whose radius, anchor and
// orientation are either edited directly or animated from a single progress
// value.
//
// # Quick start
//
// Create an [Effect] over an image, bind a [ProgressDriver] to its
// parameters and feed it progress every frame:
//
//	surface := pageflip.Surface{Width: 320, Height: 240}
//	effect := pageflip.NewEffect(img, surface)
//	effect.Params.ScrollAngle = 30
//
//	driver := pageflip.NewProgressDriver()
//	driver.Activate(&effect.Params)
//
//	tween := pageflip.NewProgressTween(0, 1, 1.5, ease.InOutSine)
//
//	// each frame:
//	driver.Update(tween.Update(1.0/60), effect.Surface)
//	effect.Draw(screen)
//
// # Parameters
//
// [EffectParameters] hold the cylinder radius, its anchor in normalized
// surface coordinates and the scroll angle in degrees. Out-of-range values
// are never an error; [EffectParameters.Clamp] folds them into range.
//
// # Mesh subdivision
//
// The curl is evaluated per pixel, but the surface mesh is refined with
// [Subdivide] so downstream vertex work sees a smooth grid. Every level
// multiplies the triangle count by 4; level 5 turns the two-triangle quad
// into 2048 triangles.
//
// # Progress
//
// A [ProgressDriver] captures the radius and angle of its target when
// activated and from then on computes the whole parameter set from the
// progress value: first the cylinder rolls across the surface at constant
// radius (the rolling phase), then the radius collapses at the far edge (the
// shrinking phase). [Evaluate] exposes the same computation as a pure
// function.
//
// # Editing
//
// [ToPose] and [FromPose] map parameters to a 3D handle pose and back, for
// direct manipulation. The editor sub-package wraps them with the
// "read-only while a driver is active" rule.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [zap] logger.
//
// [Ebitengine]: https://ebitengine.org
// [zap]: https://pkg.go.dev/go.uber.org/zap
package pageflip
