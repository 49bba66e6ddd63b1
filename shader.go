package pageflip

import "github.com/hajimehoshi/ebiten/v2"

// flipShaderSrc rolls the surface around a cylinder lying on it. The
// cylinder axis passes through CylinderPos perpendicular to ScrollDir.
// Material on the far side of the axis (negative distance along ScrollDir)
// is wound onto the cylinder; the topmost layer covering a pixel is drawn,
// back faces darkened. Pixels more than Radius behind the axis are empty.
//
// Coordinates are destination pixels. SrcScale converts a destination
// offset to a source texture offset.
const flipShaderSrc = `//kage:unit pixels
package main

var Radius float
var CylinderPos vec2
var ScrollDir vec2
var SrcScale vec2

func inside(p vec2) bool {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	return p.x >= origin.x && p.y >= origin.y && p.x < origin.x+size.x && p.y < origin.y+size.y
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	pi := 3.14159265358979
	dir := normalize(ScrollDir)
	d := dot(dst.xy-CylinderPos, dir)
	if d > Radius {
		return imageSrc0At(src) * color
	}
	if d < -Radius {
		return vec4(0)
	}
	foot := dst.xy - dir*d
	a := asin(clamp(abs(d)/Radius, 0, 1))
	back := pi - a
	front := a
	if d >= 0 {
		back = pi + a
		front = 2*pi - a
	}
	p := src + (foot-dir*(back*Radius)-dst.xy)*SrcScale
	if inside(p) {
		c := imageSrc0At(p)
		return vec4(c.rgb*0.7, c.a) * color
	}
	p = src + (foot-dir*(front*Radius)-dst.xy)*SrcScale
	if inside(p) {
		return imageSrc0At(p) * color
	}
	if d >= 0 {
		return imageSrc0At(src) * color
	}
	return vec4(0)
}
`

// Lazy shader compilation (no sync.Once, effects are driven from one goroutine).
var flipShader *ebiten.Shader

func ensureFlipShader() *ebiten.Shader {
	if flipShader == nil {
		s, err := ebiten.NewShader([]byte(flipShaderSrc))
		if err != nil {
			panic("pageflip: failed to compile flip shader: " + err.Error())
		}
		flipShader = s
	}
	return flipShader
}
