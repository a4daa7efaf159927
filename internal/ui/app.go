package ui

import (
	"log"

	"SignaturePad/internal/capture"
	"SignaturePad/internal/config"
	"SignaturePad/internal/raster"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Host is the window owning a signature field. It opens capture dialogs
// and keeps the last saved signature.
type Host struct {
	Window fyne.Window

	cfg       *config.Config
	current   *CaptureView
	preview   *canvas.Image
	status    *widget.Label
	signature raster.EncodedImage

	// OnSaved and OnCancelled mirror the capture callbacks, e.g. to notify remote pads.
	OnSaved     func(raster.EncodedImage)
	OnCancelled func()
}

// NewHost builds the main window. shareLink, when set, is shown so a
// second device can join as a remote pad.
func NewHost(a fyne.App, cfg *config.Config, shareLink string) *Host {
	h := &Host{
		Window: a.NewWindow("SignaturePad"),
		cfg:    cfg,
		status: widget.NewLabel("Ready"),
	}
	h.preview = canvas.NewImageFromImage(nil)
	h.preview.FillMode = canvas.ImageFillContain
	h.preview.SetMinSize(fyne.NewSize(float32(cfg.Surface.Width)/2, float32(cfg.Surface.Height)/2))

	sign := widget.NewButtonWithIcon("Sign…", theme.DocumentCreateIcon(), func() { h.OpenCapture() })
	top := container.NewVBox(widget.NewLabelWithStyle("Signature", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		top.Add(container.NewBorder(nil, nil, widget.NewLabel("Remote pad:"), nil, link))
	}
	h.Window.SetContent(container.NewBorder(top, container.NewHBox(sign, h.status), nil, nil, h.preview))
	h.Window.Resize(fyne.NewSize(float32(cfg.Surface.Width)+120, float32(cfg.Surface.Height)+200))
	return h
}

// Current returns the open capture dialog, if any.
func (h *Host) Current() *CaptureView {
	return h.current
}

// Signature returns the last saved signature, empty when none.
func (h *Host) Signature() raster.EncodedImage {
	return h.signature
}

// SetStatus updates the host status line.
func (h *Host) SetStatus(text string) {
	h.status.SetText(text)
}

// OpenCapture shows the capture dialog, or returns the one already open.
func (h *Host) OpenCapture() *CaptureView {
	if h.current != nil {
		return h.current
	}
	v, err := ShowCapture(h.Window, h.cfg, "Sign here", capture.Callbacks{
		OnSave:   h.saved,
		OnCancel: h.cancelled,
	})
	if err != nil {
		dialog.ShowError(err, h.Window)
		return nil
	}
	v.OnClosed = func() { h.current = nil }
	h.current = v
	return v
}

func (h *Host) saved(enc raster.EncodedImage) {
	h.signature = enc
	img, err := enc.Decode()
	if err != nil {
		log.Printf("[CAPTURE] Preview decode: %v", err)
	} else {
		h.preview.Image = img
		h.preview.Refresh()
	}
	h.SetStatus("Signature captured")
	if h.OnSaved != nil {
		h.OnSaved(enc)
	}
}

func (h *Host) cancelled() {
	h.SetStatus("Signature cancelled")
	if h.OnCancelled != nil {
		h.OnCancelled()
	}
}
