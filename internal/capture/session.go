// Package capture pairs a stroke recorder with the compositor that owns
// its surface, and exposes the save/cancel contract to the form shell.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"SignaturePad/internal/raster"
	"SignaturePad/internal/state"
)

var ErrInvalidSize = errors.New("capture: surface size must be positive")

// Options describe a capture surface.
type Options struct {
	Width      int
	Height     int
	Background color.NRGBA
	Pen        state.Pen

	// compositor options, used by tests to inject encoder failures
	raster []raster.Option
}

// Callbacks is the contract with the form shell.
type Callbacks struct {
	// OnSave receives the encoded signature once per successful save.
	OnSave func(raster.EncodedImage)
	// OnCancel is called when the user leaves without saving.
	OnCancel func()
}

// Session lives as long as the capture UI is open. Like the recorder it
// wraps, it must be driven from one goroutine.
type Session struct {
	rec  *state.Recorder
	comp *raster.Compositor
	cb   Callbacks

	closed bool

	// OnRepaint is called after every repaint so the view can refresh.
	OnRepaint func()
}

// Open builds the recorder/compositor pair for a blank surface.
func Open(opts Options, cb Callbacks) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.Background.A == 0 {
		opts.Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	ropts := append([]raster.Option{raster.WithBackground(opts.Background)}, opts.raster...)
	s := &Session{
		rec:  state.NewRecorder(float32(opts.Width), float32(opts.Height), opts.Pen),
		comp: raster.NewCompositor(opts.Width, opts.Height, ropts...),
		cb:   cb,
	}
	s.rec.OnDirty = s.repaint
	log.Printf("[CAPTURE] Opened %dx%d surface", opts.Width, opts.Height)
	return s, nil
}

func (s *Session) repaint() {
	s.comp.Repaint(s.rec.Snapshot())
	if s.OnRepaint != nil {
		s.OnRepaint()
	}
}

// Size returns the surface size in pixels.
func (s *Session) Size() (int, int) {
	return s.comp.Size()
}

// Image returns the live surface for display, or nil after Close.
func (s *Session) Image() image.Image {
	if img := s.comp.Image(); img != nil {
		return img
	}
	return nil
}

// Closed reports whether the session has released its surface.
func (s *Session) Closed() bool {
	return s.closed
}

// Handle feeds one gesture event to the recorder. Events after Close are dropped.
func (s *Session) Handle(ev state.Event) {
	if s.closed {
		return
	}
	s.rec.Handle(ev)
}

// SetPen changes the style of the next stroke.
func (s *Session) SetPen(p state.Pen) {
	s.rec.SetPen(p)
}

// Pen returns the current pen.
func (s *Session) Pen() state.Pen {
	return s.rec.Pen()
}

// Strokes returns the committed strokes.
func (s *Session) Strokes() []state.Stroke {
	return s.rec.Strokes()
}

// Clear empties the canvas.
func (s *Session) Clear() {
	if s.closed {
		return
	}
	s.rec.Clear()
}

// Load replaces the canvas content with strokes.
func (s *Session) Load(strokes []state.Stroke) {
	if s.closed {
		return
	}
	s.rec.Load(strokes)
	log.Printf("[CAPTURE] Loaded %d strokes", len(strokes))
}

// Save commits any stroke still in progress, encodes the surface and hands
// the result to OnSave. On error OnSave is not called and the session stays
// usable so the user can retry.
func (s *Session) Save() (raster.EncodedImage, error) {
	if s.closed {
		return "", fmt.Errorf("%w: %w", raster.ErrEncoding, raster.ErrReleased)
	}
	// Finalize repaints through OnDirty when it commits something.
	s.rec.Finalize()
	enc, err := s.comp.Encode()
	if err != nil {
		log.Printf("[CAPTURE] Save failed: %v", err)
		return "", err
	}
	log.Printf("[CAPTURE] Saved signature with %d strokes (%d bytes)", len(s.rec.Strokes()), len(enc))
	if s.cb.OnSave != nil {
		s.cb.OnSave(enc)
	}
	return enc, nil
}

// Cancel notifies the shell that nothing was saved and releases the surface.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.Close()
	if s.cb.OnCancel != nil {
		s.cb.OnCancel()
	}
}

// Close releases the surface. Any stroke still in progress is dropped.
// It is safe to call more than once and from every exit path.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.rec.OnDirty = nil
	s.rec.Discard()
	s.comp.Release()
	log.Printf("[CAPTURE] Closed")
}
