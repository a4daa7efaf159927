package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"SignaturePad/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (v *CaptureView) saveStrokes() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.parent)
			return
		}
		if writer == nil {
			return
		}
		v.writeStrokes(writer)
	}, v.parent)
	d.SetFileName("signature.json")
	d.Show()
}

func (v *CaptureView) writeStrokes(writer io.WriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()
	strokes := v.Session.Strokes()
	if err := export.WriteStrokes(writer, strokes); err != nil {
		log.Printf("[EXPORT] %v", err)
		v.SetStatus("Error saving strokes")
		return
	}
	v.SetStatus(fmt.Sprintf("Saved %d strokes", len(strokes)))
	log.Printf("[EXPORT] Saved %d strokes", len(strokes))
}

func (v *CaptureView) openStrokes() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.parent)
			return
		}
		if reader == nil {
			return
		}
		v.readStrokes(reader)
	}, v.parent)
}

func (v *CaptureView) readStrokes(reader io.ReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("[EXPORT] Error closing reader: %v", err)
		}
	}()
	strokes, err := export.ReadStrokes(reader)
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		v.SetStatus("Error reading file - invalid format")
		return
	}
	v.Session.Load(strokes)
	v.SetStatus(fmt.Sprintf("Loaded %d strokes", len(strokes)))
}

func (v *CaptureView) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.parent)
			return
		}
		if writer == nil {
			return
		}
		v.writePDF(writer)
	}, v.parent)
	d.SetFileName("signature.pdf")
	d.Show()
}

func (v *CaptureView) writePDF(writer io.WriteCloser) {
	defer writer.Close()
	doc := export.Document{
		Title:   v.title,
		Strokes: v.Session.Strokes(),
		Signed:  time.Now(),
	}
	if err := export.WritePDF(writer, doc); err != nil {
		log.Printf("[EXPORT] PDF: %v", err)
		dialog.ShowError(err, v.parent)
		return
	}
	v.SetStatus("Exported PDF")
}
