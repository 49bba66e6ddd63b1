package pageflip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewQuadStream(t *testing.T) {
	s := NewQuadStream(Rect{X: -5, Y: -2, Width: 10, Height: 4}, ColorWhite)
	if len(s) != 6 {
		t.Fatalf("vertices = %d, want 6", len(s))
	}
	if err := ValidateStream(s); err != nil {
		t.Fatal(err)
	}
	tl, br := s[0], s[2]
	if tl.Position != (mgl64.Vec3{-5, -2, 0}) || tl.UV[0] != (mgl64.Vec2{0, 0}) {
		t.Errorf("top-left = %v uv %v", tl.Position, tl.UV[0])
	}
	if br.Position != (mgl64.Vec3{5, 2, 0}) || br.UV[0] != (mgl64.Vec2{1, 1}) {
		t.Errorf("bottom-right = %v uv %v", br.Position, br.UV[0])
	}
	// Second triangle closes the quad at the first corner.
	if s[5] != s[0] || s[3] != s[2] {
		t.Error("quad triangles should share the diagonal")
	}
}

func TestStreamAABB(t *testing.T) {
	r := Rect{X: 3, Y: 4, Width: 10, Height: 6}
	got := StreamAABB(Subdivide(NewQuadStream(r, ColorWhite), 3))
	diff(t, r, got, approx(eps))

	if StreamAABB(nil) != (Rect{}) {
		t.Error("empty stream AABB should be zero")
	}
}

func TestAppendEbitenVertices(t *testing.T) {
	src := NewQuadStream(Rect{Width: 10, Height: 4}, Color{R: 1, G: 0.5, B: 0, A: 1})
	tint := Color{R: 1, G: 1, B: 1, A: 0.5}
	got := appendEbitenVertices(nil, src, mgl64.Vec2{100, 50}, 64, 32, tint)
	if len(got) != len(src) {
		t.Fatalf("vertices = %d, want %d", len(got), len(src))
	}
	br := got[2]
	if br.DstX != 110 || br.DstY != 54 {
		t.Errorf("dst = (%v, %v), want (110, 54)", br.DstX, br.DstY)
	}
	if br.SrcX != 64 || br.SrcY != 32 {
		t.Errorf("src = (%v, %v), want (64, 32)", br.SrcX, br.SrcY)
	}
	// Premultiplied: rgb scaled by alpha.
	if br.ColorA != 0.5 || br.ColorR != 0.5 || br.ColorG != 0.25 || br.ColorB != 0 {
		t.Errorf("color = (%v, %v, %v, %v)", br.ColorR, br.ColorG, br.ColorB, br.ColorA)
	}
}

func TestAppendEbitenVerticesReusesBuffer(t *testing.T) {
	src := NewQuadStream(Rect{Width: 1, Height: 1}, ColorWhite)
	buf := make([]ebiten.Vertex, 0, 12)
	got := appendEbitenVertices(buf, src, mgl64.Vec2{}, 1, 1, ColorWhite)
	if &got[0] != &buf[:1][0] {
		t.Error("conversion should append into the provided buffer")
	}
}

func TestSequentialIndices(t *testing.T) {
	buf := sequentialIndices(nil, 6)
	for i, v := range buf {
		if int(v) != i {
			t.Fatalf("index %d = %d", i, v)
		}
	}
	c := cap(buf)
	buf = sequentialIndices(buf, 3)
	if cap(buf) != c || len(buf) != 3 {
		t.Errorf("len/cap = %d/%d, want 3/%d", len(buf), cap(buf), c)
	}
}

func TestMaxChunkVerticesWholeTriangles(t *testing.T) {
	if maxChunkVertices%3 != 0 || maxChunkVertices > 65535 {
		t.Errorf("maxChunkVertices = %d", maxChunkVertices)
	}
}
