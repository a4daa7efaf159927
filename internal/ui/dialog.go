package ui

import (
	"fmt"
	"log"

	"SignaturePad/internal/capture"
	"SignaturePad/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CaptureView is an open signature capture dialog.
type CaptureView struct {
	Session *capture.Session
	Pad     *SignaturePad

	title  string
	parent fyne.Window
	dialog *dialog.CustomDialog
	status *widget.Label
	tools  *penToolbar
	saved  bool

	// OnClosed runs after the surface is released, whatever closed the dialog.
	OnClosed func()
}

// ShowCapture opens a capture dialog over parent. cb follows the capture
// contract: OnSave once per successful save, OnCancel when dismissed.
func ShowCapture(parent fyne.Window, cfg *config.Config, title string, cb capture.Callbacks) (*CaptureView, error) {
	s, err := capture.Open(capture.Options{
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		Background: cfg.BackgroundColor(),
		Pen:        cfg.StatePen(),
	}, cb)
	if err != nil {
		return nil, err
	}

	v := &CaptureView{
		Session: s,
		Pad:     NewSignaturePad(s),
		title:   title,
		parent:  parent,
		status:  widget.NewLabel("Sign inside the box"),
	}
	v.tools = newPenToolbar(s.Pen(), s.SetPen)

	files := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), v.openStrokes),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), v.saveStrokes),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), v.exportPDF),
	)
	content := container.NewBorder(
		container.NewHBox(v.tools.content(), files),
		v.status, nil, nil,
		container.NewCenter(v.Pad),
	)

	v.dialog = dialog.NewCustomWithoutButtons(title, content, parent)
	v.dialog.SetButtons([]fyne.CanvasObject{
		widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), v.Dismiss),
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), v.Clear),
		widget.NewButtonWithIcon("Save", theme.ConfirmIcon(), func() { v.Save() }),
	})
	v.dialog.SetOnClosed(v.closed)
	v.dialog.Show()
	return v, nil
}

// SetStatus updates the line under the pad.
func (v *CaptureView) SetStatus(text string) {
	v.status.SetText(text)
}

// Clear wipes the pad.
func (v *CaptureView) Clear() {
	v.Session.Clear()
	v.SetStatus("Cleared")
}

// Save encodes the signature and closes the dialog. On failure the error is
// shown and the dialog stays open with its strokes intact.
func (v *CaptureView) Save() bool {
	if _, err := v.Session.Save(); err != nil {
		dialog.ShowError(fmt.Errorf("could not save signature: %w", err), v.parent)
		v.SetStatus("Save failed, try again")
		return false
	}
	v.saved = true
	v.dialog.Hide()
	return true
}

// Dismiss closes without saving.
func (v *CaptureView) Dismiss() {
	v.dialog.Hide()
}

func (v *CaptureView) closed() {
	if v.saved {
		v.Session.Close()
	} else {
		log.Println("[CAPTURE] Dismissed without saving")
		v.Session.Cancel()
	}
	if v.OnClosed != nil {
		v.OnClosed()
	}
}
