package pageflip

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMalformedStream is returned by ValidateStream when a triangle stream's
// vertex count is not a multiple of 3.
var ErrMalformedStream = errors.New("pageflip: vertex count must be a multiple of 3")

// UVChannels is the number of texture coordinate pairs carried per vertex.
const UVChannels = 4

// Vertex is a single mesh vertex. Every attribute is linearly interpolable
// on its own.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Tangent  mgl64.Vec3
	UV       [UVChannels]mgl64.Vec2
	Color    Color
}

// Lerp interpolates every attribute of v toward o by t.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	out := Vertex{
		Position: lerpVec3(v.Position, o.Position, t),
		Normal:   lerpVec3(v.Normal, o.Normal, t),
		Tangent:  lerpVec3(v.Tangent, o.Tangent, t),
		Color:    v.Color.Lerp(o.Color, t),
	}
	for i := range out.UV {
		out.UV[i] = v.UV[i].Add(o.UV[i].Sub(v.UV[i]).Mul(t))
	}
	return out
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// midpoint returns the vertex halfway between a and b.
func midpoint(a, b Vertex) Vertex {
	return a.Lerp(b, 0.5)
}

// TriangleStream is a flat list of vertices where every consecutive triple
// (3k, 3k+1, 3k+2) forms one triangle. Vertices are not shared between
// triangles.
type TriangleStream []Vertex

// TriangleCount returns the number of whole triangles in s.
func (s TriangleStream) TriangleCount() int {
	return len(s) / 3
}

// Triangle returns the three vertices of triangle i.
func (s TriangleStream) Triangle(i int) (a, b, c Vertex) {
	return s[i*3], s[i*3+1], s[i*3+2]
}

// ValidateStream reports whether s is a well-formed triangle stream.
func ValidateStream(s TriangleStream) error {
	if len(s)%3 != 0 {
		return fmt.Errorf("%w: got %d vertices", ErrMalformedStream, len(s))
	}
	return nil
}
