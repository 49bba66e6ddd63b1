package pageflip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle space scaling. The handle moves a tenth of the surface size across
// the anchor range and a fifth of the radius in depth. ToPose and FromPose
// must agree on these for edits to round-trip.
const (
	handleSpanDivisor  = 10
	handleDepthDivisor = 5
)

var axisZ = mgl64.Vec3{0, 0, 1}

// ToPose maps effect parameters to the pose of the manipulation handle. The
// handle sits in front of the surface (negative Z) at a depth proportional
// to the radius and is rotated about Z by -ScrollAngle.
func ToPose(p EffectParameters, s Surface) Pose {
	a := p.CylinderAnchor
	pos := s.WorldPosition.Add(mgl64.Vec3{
		s.Width * (a.X() - 0.5) / handleSpanDivisor,
		s.Height * (a.Y() - 0.5) / handleSpanDivisor,
		-p.Radius / handleDepthDivisor,
	})
	rot := mgl64.QuatIdent().Mul(mgl64.QuatRotate(mgl64.DegToRad(-p.ScrollAngle), axisZ))
	return Pose{Position: pos, Rotation: rot}
}

// FromPose is the inverse of ToPose. The result is clamped, so poses outside
// the valid range (anchor off the surface, handle behind it) snap to the
// nearest valid parameters and no longer round-trip exactly.
//
// On a surface with zero width or height the matching anchor component is
// undefined and is set to 0.5.
func FromPose(pose Pose, s Surface) EffectParameters {
	origin := s.WorldPosition
	d := pose.Position.Sub(origin)

	p := EffectParameters{
		Radius:         -d.Z() * handleDepthDivisor,
		ScrollAngle:    NormalizeAngle(-eulerZ(pose.Rotation)),
		CylinderAnchor: mgl64.Vec2{0.5, 0.5},
	}
	if s.Width != 0 {
		p.CylinderAnchor[0] = d.X()*handleSpanDivisor/s.Width + 0.5
	}
	if s.Height != 0 {
		p.CylinderAnchor[1] = d.Y()*handleSpanDivisor/s.Height + 0.5
	}
	return p.Clamp()
}

// eulerZ returns the Z component, in degrees, of q decomposed in Z-X-Y
// order (roll applied first), in (-180, 180].
func eulerZ(q mgl64.Quat) float64 {
	q = q.Normalize()
	x, y, z, w := q.V.X(), q.V.Y(), q.V.Z(), q.W
	return mgl64.RadToDeg(math.Atan2(2*(x*y+w*z), 1-2*(x*x+z*z)))
}
