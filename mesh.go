package pageflip

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxChunkVertices is the largest vertex count one DrawTriangles call can
// address with uint16 indices, rounded down to whole triangles.
const maxChunkVertices = 65535 / 3 * 3

// NewQuadStream returns the two-triangle stream covering r, the same
// topology a UI image emits before subdivision. UV channel 0 spans [0,1]²
// with (0,0) at the top-left corner; the other channels are zero.
func NewQuadStream(r Rect, c Color) TriangleStream {
	corner := func(x, y, u, v float64) Vertex {
		vx := Vertex{
			Position: mgl64.Vec3{x, y, 0},
			Normal:   mgl64.Vec3{0, 0, -1},
			Tangent:  mgl64.Vec3{1, 0, 0},
			Color:    c,
		}
		vx.UV[0] = mgl64.Vec2{u, v}
		return vx
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	tl := corner(x0, y0, 0, 0)
	tr := corner(x1, y0, 1, 0)
	br := corner(x1, y1, 1, 1)
	bl := corner(x0, y1, 0, 1)
	return TriangleStream{tl, tr, br, br, bl, tl}
}

// appendEbitenVertices converts src to ebiten vertices appended to dst,
// offsetting positions by origin and scaling UV channel 0 by the texture
// size. Colors are multiplied by tint and premultiplied.
func appendEbitenVertices(dst []ebiten.Vertex, src TriangleStream, origin mgl64.Vec2, texW, texH float64, tint Color) []ebiten.Vertex {
	ox, oy := origin.X(), origin.Y()
	for i := range src {
		s := &src[i]
		a := float32(s.Color.A * tint.A)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(s.Position.X() + ox),
			DstY:   float32(s.Position.Y() + oy),
			SrcX:   float32(s.UV[0].X() * texW),
			SrcY:   float32(s.UV[0].Y() * texH),
			ColorR: float32(s.Color.R*tint.R) * a,
			ColorG: float32(s.Color.G*tint.G) * a,
			ColorB: float32(s.Color.B*tint.B) * a,
			ColorA: a,
		})
	}
	return dst
}

// sequentialIndices grows buf to n sequential indices 0..n-1 using a
// high-water-mark strategy. n must not exceed maxChunkVertices.
func sequentialIndices(buf []uint16, n int) []uint16 {
	if cap(buf) < n {
		buf = make([]uint16, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = uint16(i)
	}
	return buf
}

// StreamAABB returns the axis-aligned bounding box of the stream's XY
// positions.
func StreamAABB(s TriangleStream) Rect {
	if len(s) == 0 {
		return Rect{}
	}
	minX, minY := s[0].Position.X(), s[0].Position.Y()
	maxX, maxY := minX, minY
	for i := 1; i < len(s); i++ {
		x, y := s[i].Position.X(), s[i].Position.Y()
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
