package ui

import (
	"fmt"
	"log"

	"SignaturePad/internal/capture"
	"SignaturePad/internal/config"
	padnet "SignaturePad/internal/net"
	"SignaturePad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HandleRemote applies a frame from a remote pad to the open capture
// dialog. It must run on the UI goroutine. Frames arriving while no dialog
// is open are dropped.
func (h *Host) HandleRemote(m padnet.Message) {
	if m.Type == padnet.TypeHello {
		h.SetStatus(fmt.Sprintf("Remote pad %s connected", shortID(m.Pad)))
		return
	}
	v := h.current
	if v == nil {
		return
	}
	switch m.Type {
	case padnet.TypeGesture:
		w, ht := v.Pad.SurfaceSize()
		if ev, ok := m.Event(w, ht); ok {
			v.Session.Handle(ev)
		}
	case padnet.TypeClear:
		v.Clear()
	case padnet.TypeSave:
		v.Save()
	case padnet.TypeCancel:
		v.Dismiss()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RemotePad is the window of a device acting as a pen for a host.
type RemotePad struct {
	Window fyne.Window
	Pad    *SignaturePad
	status *widget.Label
	send   func(padnet.Message) error
}

// NewRemotePad builds a pad window that draws locally and forwards every
// gesture through send.
func NewRemotePad(a fyne.App, cfg *config.Config, send func(padnet.Message) error) (*RemotePad, error) {
	s, err := capture.Open(capture.Options{
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		Background: cfg.BackgroundColor(),
		Pen:        cfg.StatePen(),
	}, capture.Callbacks{})
	if err != nil {
		return nil, err
	}
	r := &RemotePad{
		Window: a.NewWindow("SignaturePad - Remote"),
		Pad:    NewSignaturePad(s),
		status: widget.NewLabel("Connecting…"),
		send:   send,
	}
	r.Pad.OnGesture = func(ev state.Event) {
		w, h := r.Pad.SurfaceSize()
		r.forward(padnet.GestureMessage(ev, w, h))
	}

	buttons := container.NewHBox(
		widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), func() { r.finish(padnet.TypeCancel) }),
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() { r.finish(padnet.TypeClear) }),
		widget.NewButtonWithIcon("Send", theme.MailSendIcon(), func() { r.finish(padnet.TypeSave) }),
	)
	r.Window.SetContent(container.NewBorder(nil, container.NewBorder(nil, nil, nil, buttons, r.status), nil, nil, container.NewCenter(r.Pad)))
	r.Window.SetOnClosed(s.Close)
	return r, nil
}

// SetStatus shows a line from the host.
func (r *RemotePad) SetStatus(text string) {
	r.status.SetText(text)
}

func (r *RemotePad) forward(m padnet.Message) {
	if err := r.send(m); err != nil {
		log.Printf("[REMOTE] %v", err)
		r.SetStatus("Not connected to host")
	}
}

// finish sends a control frame and wipes the local pad.
func (r *RemotePad) finish(kind string) {
	r.forward(padnet.Message{Type: kind})
	r.Pad.Session().Clear()
}
