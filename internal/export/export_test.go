package export

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"SignaturePad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []state.Stroke{
	{ID: "a", Points: []state.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}, Color: color.NRGBA{A: 255}, Width: 2.5},
	{ID: "b", Points: []state.Point{{X: 40, Y: 15}}, Color: color.NRGBA{B: 255, A: 255}, Width: 4},
}

func TestStrokesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStrokes(&buf, sample))

	got, err := ReadStrokes(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestReadStrokesRejectsGarbage(t *testing.T) {
	_, err := ReadStrokes(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "invalid stroke file")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, Document{
		Title:   "Delivery receipt",
		Signer:  "J. Doe",
		Strokes: sample,
		Signed:  time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDFWithoutStrokes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Document{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signature.pdf")
	require.NoError(t, ExportPDF(path, Document{Title: "Form", Strokes: sample}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
