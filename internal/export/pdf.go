package export

import (
	"io"
	"time"

	"SignaturePad/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// Document is a signature to lay out on a page.
type Document struct {
	Title   string
	Signer  string
	Strokes []state.Stroke
	Signed  time.Time
}

// Signature box on an A4 portrait page, in millimetres.
const (
	boxX = 20.0
	boxY = 40.0
	boxW = 170.0
	boxH = 60.0
)

func newPDF(doc Document) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetCreator("SignaturePad", true)
	if doc.Title != "" {
		p.SetTitle(doc.Title, true)
	}
	p.AddPage()

	p.SetFont("Helvetica", "B", 14)
	p.Text(boxX, boxY-15, doc.Title)

	p.SetDrawColor(180, 180, 180)
	p.SetLineWidth(0.2)
	p.Line(boxX, boxY+boxH, boxX+boxW, boxY+boxH)

	p.SetFont("Helvetica", "", 10)
	caption := doc.Signer
	if !doc.Signed.IsZero() {
		if caption != "" {
			caption += ", "
		}
		caption += doc.Signed.Format("2006-01-02 15:04")
	}
	p.Text(boxX, boxY+boxH+6, caption)

	drawStrokes(p, doc.Strokes)
	return p
}

// drawStrokes fits the strokes into the signature box keeping their aspect ratio.
func drawStrokes(p *gofpdf.Fpdf, strokes []state.Stroke) {
	b, ok := state.Bounds(strokes)
	if !ok {
		return
	}
	scale := 1.0
	if b.Width > 0 && b.Height > 0 {
		scale = min(boxW/float64(b.Width), boxH/float64(b.Height))
	}
	offX := boxX + (boxW-float64(b.Width)*scale)/2
	offY := boxY + (boxH-float64(b.Height)*scale)/2
	tx := func(pt state.Point) (float64, float64) {
		return offX + float64(pt.X-b.X)*scale, offY + float64(pt.Y-b.Y)*scale
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		p.SetAlpha(float64(s.Color.A)/255, "Normal")
		if s.IsDot() {
			x, y := tx(s.Points[0])
			p.SetFillColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
			p.Circle(x, y, float64(s.Width)*scale/2, "F")
			continue
		}
		p.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
		p.SetLineWidth(float64(s.Width) * scale)
		p.MoveTo(tx(s.Points[0]))
		for _, pt := range s.Points[1:] {
			p.LineTo(tx(pt))
		}
		p.DrawPath("D")
	}
	p.SetAlpha(1, "Normal")
}

// WritePDF renders doc as a one page PDF.
func WritePDF(w io.Writer, doc Document) error {
	p := newPDF(doc)
	return p.Output(w)
}

// ExportPDF writes doc to path.
func ExportPDF(path string, doc Document) error {
	p := newPDF(doc)
	return p.OutputFileAndClose(path)
}
