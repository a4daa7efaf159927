// Package export writes captured signatures to stroke files and PDF.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"SignaturePad/internal/state"
)

// WriteStrokes stores strokes as indented JSON.
func WriteStrokes(w io.Writer, strokes []state.Stroke) error {
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal strokes: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export: write strokes: %w", err)
	}
	return nil
}

// ReadStrokes parses a file written by WriteStrokes.
func ReadStrokes(r io.Reader) ([]state.Stroke, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("export: read strokes: %w", err)
	}
	var strokes []state.Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, fmt.Errorf("export: invalid stroke file: %w", err)
	}
	return strokes, nil
}
