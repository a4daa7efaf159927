// Package raster paints recorded strokes onto a pixel surface by wrapping
// rasterx, and encodes that surface for transport.
package raster

import (
	"image"
	"image/color"
	"io"

	"SignaturePad/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Compositor exclusively owns the surface. Nothing else writes to it.
type Compositor struct {
	width, height int
	background    color.NRGBA
	encode        func(io.Writer, image.Image) error

	img    *image.RGBA
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithBackground sets the colour the surface is cleared to.
func WithBackground(c color.NRGBA) Option {
	return func(c2 *Compositor) { c2.background = c }
}

// WithEncoder replaces the PNG encoder used by Encode.
func WithEncoder(enc func(io.Writer, image.Image) error) Option {
	return func(c *Compositor) { c.encode = enc }
}

// NewCompositor allocates a width x height surface and paints it blank.
func NewCompositor(width, height int, opts ...Option) *Compositor {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Compositor{
		width:      width,
		height:     height,
		background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		encode:     encodePNG,
	}
	for _, o := range opts {
		o(c)
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, c.img, c.img.Bounds())
	c.dasher = rasterx.NewDasher(width, height, scanner)
	c.filler = rasterx.NewFiller(width, height, scanner)
	c.clearSurface()
	return c
}

// Size returns the surface dimensions in pixels.
func (c *Compositor) Size() (int, int) {
	return c.width, c.height
}

// Image returns the live surface, or nil once released. Callers must treat
// it as read-only.
func (c *Compositor) Image() *image.RGBA {
	return c.img
}

// Released reports whether Release has been called.
func (c *Compositor) Released() bool {
	return c.img == nil
}

// Release drops the surface and the rasterizers. Further Repaint calls are
// no-ops and Encode fails with ErrReleased.
func (c *Compositor) Release() {
	c.img = nil
	c.dasher = nil
	c.filler = nil
}

func (c *Compositor) clearSurface() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// Repaint clears the surface and replays snap: committed strokes in order,
// then the active stroke on top.
func (c *Compositor) Repaint(snap state.Snapshot) {
	if c.img == nil {
		return
	}
	c.clearSurface()
	for _, s := range snap.Strokes {
		c.paint(s)
	}
	if snap.Active != nil {
		c.paint(*snap.Active)
	}
}

func toFixed(p state.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (c *Compositor) paint(s state.Stroke) {
	if len(s.Points) == 0 || s.Width <= 0 {
		return
	}
	if s.IsDot() {
		c.dot(s)
		return
	}

	c.dasher.Clear()
	c.dasher.SetStroke(
		fixed.Int26_6(s.Width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round, nil, 0,
	)
	c.dasher.SetColor(s.Color)
	c.dasher.Start(toFixed(s.Points[0]))
	for _, p := range s.Points[1:] {
		c.dasher.Line(toFixed(p))
	}
	c.dasher.Stop(false)
	c.dasher.Draw()
}

// dot fills a disc of diameter Width. The stroker drops zero-length
// segments, so a tap would otherwise leave no mark.
func (c *Compositor) dot(s state.Stroke) {
	p := s.Points[0]
	c.filler.Clear()
	c.filler.SetColor(s.Color)
	rasterx.AddCircle(float64(p.X), float64(p.Y), float64(s.Width)/2, c.filler)
	c.filler.Draw()
}
