package pageflip

import "go.uber.org/zap"

// Subdivide refines stream level times. Each step splits every triangle
// (a, b, c) of the current stream at its edge midpoints and emits, in order,
// (a, ab, ca), (b, bc, ab), (c, ca, bc) and (ab, bc, ca). The emitted
// winding matches the parent's, and all attributes are interpolated, so
// every output vertex is a convex combination of its parent's corners.
//
// The triangle count grows by 4^level. level is clamped to
// MaxSubdivisionLevel, which turns one triangle into 1024; callers feeding
// large meshes pay for that.
//
// A stream whose length is not a multiple of 3 comes from a broken mesh
// upstream and causes a panic. Use ValidateStream to check first. If level
// is <= 0 or the stream holds no triangle, stream is returned as is.
// Subdivide never modifies stream.
func Subdivide(stream TriangleStream, level int) TriangleStream {
	if err := ValidateStream(stream); err != nil {
		panic(err.Error())
	}
	if level <= 0 || len(stream) < 3 {
		return stream
	}
	if level > MaxSubdivisionLevel {
		Logger().Debug("subdivision level clamped",
			zap.Int("requested", level), zap.Int("level", MaxSubdivisionLevel))
		level = MaxSubdivisionLevel
	}

	cur := stream
	for ; level > 0; level-- {
		cur = subdivideStep(cur)
	}
	return cur
}

// subdivideStep performs one refinement pass into a freshly allocated buffer.
func subdivideStep(src TriangleStream) TriangleStream {
	dst := make(TriangleStream, 0, len(src)*4)
	for i := 0; i+2 < len(src); i += 3 {
		a, b, c := src[i], src[i+1], src[i+2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)
		dst = append(dst,
			a, ab, ca,
			b, bc, ab,
			c, ca, bc,
			ab, bc, ca,
		)
	}
	return dst
}
