package pageflip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Uniform names consumed by the page-curl shader.
const (
	UniformRadius      = "_Radius"
	UniformCylinderPos = "_CylinderPos"
	UniformScrollDir   = "_ScrollDir"
)

// UniformSink receives shader uniforms. A material, a Kage uniform map or a
// test recorder can all implement it.
type UniformSink interface {
	SetFloat(name string, v float64)
	SetVec2(name string, v mgl64.Vec2)
}

// Uniforms are the per-frame shader inputs derived from EffectParameters.
type Uniforms struct {
	// Radius is the cylinder radius.
	Radius float64
	// CylinderPos is the cylinder anchor in the surface's parent space.
	CylinderPos mgl64.Vec2
	// ScrollDir is the unit direction the page rolls toward.
	ScrollDir mgl64.Vec2
}

// ComputeUniforms derives the shader uniforms for p on surface s.
//
//	_Radius      = radius
//	_CylinderPos = localPosition + rectMin + clamp01(anchor) * (width, height)
//	_ScrollDir   = normalize(sin(angle), cos(angle))
func ComputeUniforms(p EffectParameters, s Surface) Uniforms {
	a := p.CylinderAnchor
	pos := s.LocalPosition.Add(s.RectMin()).Add(mgl64.Vec2{
		Clamp01(a.X()) * s.Width,
		Clamp01(a.Y()) * s.Height,
	})
	sin, cos := math.Sincos(mgl64.DegToRad(p.ScrollAngle))
	return Uniforms{
		Radius:      p.Radius,
		CylinderPos: pos,
		ScrollDir:   mgl64.Vec2{sin, cos}.Normalize(),
	}
}

// Apply writes u to sink under the shader's uniform names.
func (u Uniforms) Apply(sink UniformSink) {
	sink.SetFloat(UniformRadius, u.Radius)
	sink.SetVec2(UniformCylinderPos, u.CylinderPos)
	sink.SetVec2(UniformScrollDir, u.ScrollDir)
}

// Map returns u keyed by uniform name.
func (u Uniforms) Map() map[string]any {
	m := make(uniformMap, 3)
	u.Apply(m)
	return m
}

// uniformMap is a UniformSink storing values as float64 and mgl64.Vec2.
type uniformMap map[string]any

func (m uniformMap) SetFloat(name string, v float64)    { m[name] = v }
func (m uniformMap) SetVec2(name string, v mgl64.Vec2) { m[name] = v }

// kageUniforms is a UniformSink writing into a Kage uniform map. Kage only
// exposes exported identifiers, so the leading underscore of each name is
// dropped ("_Radius" becomes "Radius"). Vector storage is reused between
// frames.
type kageUniforms struct {
	m    map[string]any
	vecs map[string][]float32
}

func newKageUniforms() *kageUniforms {
	return &kageUniforms{
		m:    make(map[string]any, 3),
		vecs: make(map[string][]float32, 2),
	}
}

func kageName(name string) string {
	if len(name) > 0 && name[0] == '_' {
		return name[1:]
	}
	return name
}

func (k *kageUniforms) SetFloat(name string, v float64) {
	k.m[kageName(name)] = float32(v)
}

func (k *kageUniforms) SetVec2(name string, v mgl64.Vec2) {
	n := kageName(name)
	buf, ok := k.vecs[n]
	if !ok {
		buf = make([]float32, 2)
		k.vecs[n] = buf
		k.m[n] = buf
	}
	buf[0] = float32(v.X())
	buf[1] = float32(v.Y())
}
