package ui

import (
	"SignaturePad/internal/capture"
	"SignaturePad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// SignaturePad shows a capture session's surface and feeds it pointer
// gestures. It never draws strokes itself.
type SignaturePad struct {
	widget.BaseWidget
	session *capture.Session
	surface *canvas.Image
	width   float32
	height  float32

	// OnGesture is called after each event has been applied locally.
	OnGesture func(ev state.Event)
}

var _ fyne.Widget = (*SignaturePad)(nil)
var _ fyne.Draggable = (*SignaturePad)(nil)
var _ desktop.Mouseable = (*SignaturePad)(nil)
var _ mobile.Touchable = (*SignaturePad)(nil)

func NewSignaturePad(s *capture.Session) *SignaturePad {
	w, h := s.Size()
	p := &SignaturePad{
		session: s,
		width:   float32(w),
		height:  float32(h),
	}
	p.surface = canvas.NewImageFromImage(s.Image())
	p.surface.FillMode = canvas.ImageFillStretch
	p.surface.ScaleMode = canvas.ImageScalePixels
	p.surface.SetMinSize(fyne.NewSize(p.width, p.height))
	s.OnRepaint = p.surface.Refresh
	p.ExtendBaseWidget(p)
	return p
}

// Session returns the session the pad drives.
func (p *SignaturePad) Session() *capture.Session {
	return p.session
}

// SurfaceSize is the size of the session surface in pixels.
func (p *SignaturePad) SurfaceSize() (float32, float32) {
	return p.width, p.height
}

// toSurface maps a widget position onto the surface, which may be
// stretched when the pad is laid out larger than its minimum size.
func (p *SignaturePad) toSurface(pos fyne.Position) state.Point {
	size := p.Size()
	x, y := pos.X, pos.Y
	if size.Width > 0 && size.Height > 0 {
		x = pos.X * p.width / size.Width
		y = pos.Y * p.height / size.Height
	}
	return state.Point{X: x, Y: y}
}

func (p *SignaturePad) handle(kind state.GestureKind, pos fyne.Position) {
	ev := state.Event{Kind: kind, Point: p.toSurface(pos)}
	p.session.Handle(ev)
	if p.OnGesture != nil {
		p.OnGesture(ev)
	}
}

func (p *SignaturePad) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.handle(state.GestureStart, e.Position)
	}
}

func (p *SignaturePad) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.handle(state.GestureEnd, e.Position)
	}
}

func (p *SignaturePad) Dragged(e *fyne.DragEvent) {
	p.handle(state.GestureMove, e.Position)
}

// DragEnd is also followed by MouseUp on desktop; the second end is a no-op.
func (p *SignaturePad) DragEnd() {
	p.handle(state.GestureEnd, fyne.Position{})
}

func (p *SignaturePad) TouchDown(e *mobile.TouchEvent) {
	p.handle(state.GestureStart, e.Position)
}

func (p *SignaturePad) TouchUp(e *mobile.TouchEvent) {
	p.handle(state.GestureEnd, e.Position)
}

func (p *SignaturePad) TouchCancel(e *mobile.TouchEvent) {
	p.handle(state.GestureCancel, e.Position)
}

func (p *SignaturePad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.surface)
}

func (p *SignaturePad) MinSize() fyne.Size {
	return fyne.NewSize(p.width, p.height)
}
