package sill

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette maps Colour indices to display colours. Index with Base() so the
// translucency bit never runs off the table.
type Palette [64]color.RGBA

// DefaultPalette is a plain grey ramp with a few accents, good enough for
// tools and examples that do not ship their own palette.
func DefaultPalette() *Palette {
	var p Palette
	for i := range p {
		v := uint8(40 + i*3)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	p[1] = color.RGBA{R: 200, G: 60, B: 60, A: 255}   // red
	p[2] = color.RGBA{R: 70, G: 140, B: 70, A: 255}   // green
	p[3] = color.RGBA{R: 70, G: 100, B: 180, A: 255}  // blue
	p[4] = color.RGBA{R: 200, G: 180, B: 80, A: 255}  // yellow
	p[5] = color.RGBA{R: 235, G: 235, B: 235, A: 255} // near white
	return &p
}

// SpriteSource resolves image references to drawable images.
type SpriteSource interface {
	SpriteImage(ref uint32) *ebiten.Image
}

// EbitenTarget renders windowing primitives onto an ebiten image. Clipping
// uses ebiten sub-images, so SubRegion allocates no pixels.
type EbitenTarget struct {
	img     *ebiten.Image
	palette *Palette
	sprites SpriteSource
}

// NewEbitenTarget wraps img as a render target. palette may be nil for the
// default palette; sprites may be nil if Sprite is never used.
func NewEbitenTarget(img *ebiten.Image, palette *Palette, sprites SpriteSource) *EbitenTarget {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &EbitenTarget{img: img, palette: palette, sprites: sprites}
}

func (t *EbitenTarget) colour(c Colour) color.RGBA {
	rgba := t.palette[c.Base()%Colour(len(t.palette))]
	if c&ColourTranslucent != 0 {
		rgba.A = 160
	}
	return rgba
}

// Bounds returns the drawable area in screen coordinates.
func (t *EbitenTarget) Bounds() Rect {
	b := t.img.Bounds()
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// SubRegion narrows the target to r via an ebiten sub-image.
func (t *EbitenTarget) SubRegion(r Rect) RenderTarget {
	clipped := t.Bounds().Intersection(r)
	sub := t.img.SubImage(image.Rect(clipped.X, clipped.Y, clipped.Right(), clipped.Bottom())).(*ebiten.Image)
	return &EbitenTarget{img: sub, palette: t.palette, sprites: t.sprites}
}

// FillRect fills r with the palette colour.
func (t *EbitenTarget) FillRect(r Rect, colour Colour) {
	vector.DrawFilledRect(t.img,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		t.colour(colour), false)
}

// BevelRect draws r as a bevelled box: fill plus one-pixel light and dark
// edges. Outset lights the top-left; inset is the reverse.
func (t *EbitenTarget) BevelRect(r Rect, colour Colour, style BevelStyle) {
	base := t.colour(colour)
	light := color.RGBA{R: lighten(base.R), G: lighten(base.G), B: lighten(base.B), A: base.A}
	dark := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: base.A}
	if style == BevelInset {
		light, dark = dark, light
	}

	vector.DrawFilledRect(t.img,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		base, false)
	// top and left
	vector.StrokeLine(t.img, float32(r.X), float32(r.Y), float32(r.Right()), float32(r.Y), 1, light, false)
	vector.StrokeLine(t.img, float32(r.X), float32(r.Y), float32(r.X), float32(r.Bottom()), 1, light, false)
	// bottom and right
	vector.StrokeLine(t.img, float32(r.X), float32(r.Bottom()-1), float32(r.Right()), float32(r.Bottom()-1), 1, dark, false)
	vector.StrokeLine(t.img, float32(r.Right()-1), float32(r.Y), float32(r.Right()-1), float32(r.Bottom()), 1, dark, false)
}

// Sprite blits the referenced image at (x, y). Unresolvable references
// are skipped.
func (t *EbitenTarget) Sprite(ref uint32, x, y int, colour Colour) {
	if t.sprites == nil {
		return
	}
	img := t.sprites.SpriteImage(ref)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	if colour != 0 {
		c := t.colour(colour)
		op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	}
	t.img.DrawImage(img, op)
}

func lighten(v uint8) uint8 {
	n := int(v) + 80
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
