package pageflip

import "github.com/go-gl/mathgl/mgl64"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default vertex color (no tint).
var ColorWhite = Color{1, 1, 1, 1}

// Lerp returns the component-wise linear interpolation between c and o.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Min returns the rectangle's minimum corner.
func (r Rect) Min() mgl64.Vec2 { return mgl64.Vec2{r.X, r.Y} }

// Max returns the rectangle's maximum corner.
func (r Rect) Max() mgl64.Vec2 { return mgl64.Vec2{r.X + r.Width, r.Y + r.Height} }

// Offset returns r moved by d.
func (r Rect) Offset(d mgl64.Vec2) Rect {
	return Rect{X: r.X + d.X(), Y: r.Y + d.Y(), Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p mgl64.Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X() >= lo.X() && p.X() <= hi.X() && p.Y() >= lo.Y() && p.Y() <= hi.Y()
}

const (
	// MinRadius is the floor applied to EffectParameters.Radius. A radius at
	// the floor represents a fully collapsed (turned) page.
	MinRadius = 0.01

	// MaxSubdivisionLevel is the highest accepted subdivision level. Each
	// level multiplies the triangle count by 4, so level 5 emits 1024
	// triangles for every input triangle.
	MaxSubdivisionLevel = 5

	// DefaultSubdivisionLevel is the level used by NewEffect.
	DefaultSubdivisionLevel = 4

	// DefaultRadius is the cylinder radius used by DefaultEffectParameters.
	DefaultRadius = 100
)

// Surface describes the rectangle the effect is applied to. It is supplied
// by the host every tick and never modified by this package.
type Surface struct {
	Width, Height float64

	// Pivot is the normalized origin of the rectangle inside its own bounds.
	// (0,0) puts the origin at the top-left corner, (0.5,0.5) at the center.
	Pivot mgl64.Vec2

	// LocalPosition is the rectangle origin in its parent's space. The shader
	// uniforms are expressed in this space.
	LocalPosition mgl64.Vec2

	// WorldPosition is the rectangle origin in world space. Handle poses are
	// expressed relative to it.
	WorldPosition mgl64.Vec3
}

// Rect returns the surface rectangle in its own local space (pivot applied).
func (s Surface) Rect() Rect {
	m := s.RectMin()
	return Rect{X: m.X(), Y: m.Y(), Width: s.Width, Height: s.Height}
}

// RectMin returns the minimum corner of the rectangle relative to its origin.
func (s Surface) RectMin() mgl64.Vec2 {
	return mgl64.Vec2{-s.Pivot.X() * s.Width, -s.Pivot.Y() * s.Height}
}

// Degenerate reports whether the surface has no area.
func (s Surface) Degenerate() bool {
	return s.Width <= 0 || s.Height <= 0
}

// EffectParameters fully determine the deformation.
type EffectParameters struct {
	// Radius of the virtual cylinder, in surface units.
	Radius float64
	// CylinderAnchor is the normalized point in [0,1]² the cylinder is
	// centered on.
	CylinderAnchor mgl64.Vec2
	// ScrollAngle is the orientation of the flip axis in degrees.
	ScrollAngle float64
}

// DefaultEffectParameters returns the parameters a freshly created effect starts with.
func DefaultEffectParameters() EffectParameters {
	return EffectParameters{Radius: DefaultRadius}
}

// Clamp returns p with every field normalized into its valid range: the
// radius is floored at MinRadius, the anchor is clamped to the unit square
// and the angle is clamped to [-180, 180]. Clamping never fails.
func (p EffectParameters) Clamp() EffectParameters {
	return EffectParameters{
		Radius: max(MinRadius, p.Radius),
		CylinderAnchor: mgl64.Vec2{
			Clamp01(p.CylinderAnchor.X()),
			Clamp01(p.CylinderAnchor.Y()),
		},
		ScrollAngle: mgl64.Clamp(p.ScrollAngle, -180, 180),
	}
}

// Pose is the 3D transform of the manipulation handle.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}
