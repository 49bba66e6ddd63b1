package pageflip

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Effect renders an image as a page curled around a cylinder. It owns the
// effect parameters, the subdivision level and the cached subdivided mesh;
// the surface is supplied by the host and may change every frame.
//
// Params may be written directly (by an editor or a ProgressDriver bound to
// &Params). Values are clamped when uniforms are computed.
type Effect struct {
	Params  EffectParameters
	Surface Surface
	Image   *ebiten.Image
	Color   Color

	level int

	// Cached mesh, rebuilt when level or surface rectangle change.
	mesh      TriangleStream
	meshRect  Rect
	meshLevel int
	meshDirty bool

	verts    []ebiten.Vertex // preallocated conversion buffer
	inds     []uint16
	uniforms *kageUniforms
	shaderOp ebiten.DrawTrianglesShaderOptions
}

// NewEffect creates an effect drawing img over surface s with default
// parameters and subdivision level. img may be nil when the effect is only
// used to compute meshes and uniforms.
func NewEffect(img *ebiten.Image, s Surface) *Effect {
	return &Effect{
		Params:    DefaultEffectParameters(),
		Surface:   s,
		Image:     img,
		Color:     ColorWhite,
		level:     DefaultSubdivisionLevel,
		meshDirty: true,
		uniforms:  newKageUniforms(),
	}
}

// Level returns the subdivision level.
func (e *Effect) Level() int { return e.level }

// SetLevel sets the subdivision level, clamped to [0, MaxSubdivisionLevel].
// Every level quadruples the triangle count of the mesh.
func (e *Effect) SetLevel(level int) {
	clamped := min(max(level, 0), MaxSubdivisionLevel)
	if clamped != level {
		Logger().Debug("effect subdivision level clamped",
			zap.Int("requested", level), zap.Int("level", clamped))
	}
	if clamped != e.level {
		e.level = clamped
		e.meshDirty = true
	}
}

// InvalidateMesh forces the mesh to be rebuilt on the next Mesh or Draw call.
func (e *Effect) InvalidateMesh() {
	e.meshDirty = true
}

// Mesh returns the subdivided triangle stream covering the surface
// rectangle in surface-local coordinates. The result is cached and must not
// be modified.
func (e *Effect) Mesh() TriangleStream {
	r := e.Surface.Rect()
	if e.meshDirty || r != e.meshRect || e.level != e.meshLevel {
		e.mesh = Subdivide(NewQuadStream(r, ColorWhite), e.level)
		e.meshRect = r
		e.meshLevel = e.level
		e.meshDirty = false
	}
	return e.mesh
}

// Uniforms returns the shader uniforms for the current parameters.
func (e *Effect) Uniforms() Uniforms {
	return ComputeUniforms(e.Params.Clamp(), e.Surface)
}

// Draw renders the effect onto dst. Mesh positions are offset by the
// surface's LocalPosition, so dst is expected to be in the surface's parent
// space. Draw does nothing without an image or on a degenerate surface.
func (e *Effect) Draw(dst *ebiten.Image) {
	if e.Image == nil || e.Surface.Degenerate() {
		return
	}
	mesh := e.Mesh()

	b := e.Image.Bounds()
	texW, texH := float64(b.Dx()), float64(b.Dy())

	e.Uniforms().Apply(e.uniforms)
	e.uniforms.SetVec2("SrcScale", mgl64.Vec2{texW / e.Surface.Width, texH / e.Surface.Height})

	shader := ensureFlipShader()
	e.shaderOp.Images[0] = e.Image
	e.shaderOp.Uniforms = e.uniforms.m

	origin := e.Surface.LocalPosition
	for start := 0; start < len(mesh); start += maxChunkVertices {
		end := min(start+maxChunkVertices, len(mesh))
		e.verts = appendEbitenVertices(e.verts[:0], mesh[start:end], origin, texW, texH, e.Color)
		// SrcX/SrcY are relative to the image's region, which may not start at
		// (0,0) for sub-images.
		if b.Min.X != 0 || b.Min.Y != 0 {
			for i := range e.verts {
				e.verts[i].SrcX += float32(b.Min.X)
				e.verts[i].SrcY += float32(b.Min.Y)
			}
		}
		e.inds = sequentialIndices(e.inds, len(e.verts))
		dst.DrawTrianglesShader(e.verts, e.inds, shader, &e.shaderOp)
	}
}
