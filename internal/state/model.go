package state

import (
	"image/color"
	"math"
)

// Point is a surface-local sample.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Stroke is one continuous pen contact.
type Stroke struct {
	ID     string      `json:"id"`
	Points []Point     `json:"points"`
	Color  color.NRGBA `json:"color"`
	Width  float32     `json:"width"`
}

// Pen is the style applied to new strokes.
type Pen struct {
	Color color.NRGBA
	Width float32
}

var DefaultPen = Pen{Color: color.NRGBA{A: 255}, Width: 2.5}

// IsDot reports whether the stroke never leaves its first point (a tap).
func (s Stroke) IsDot() bool {
	if len(s.Points) == 0 {
		return false
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i] != s.Points[0] {
			return false
		}
	}
	return true
}

func (s Stroke) clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	s.Points = pts
	return s
}

type GestureKind int

const (
	GestureStart GestureKind = iota
	GestureMove
	GestureEnd
	GestureCancel
)

func (k GestureKind) String() string {
	switch k {
	case GestureStart:
		return "start"
	case GestureMove:
		return "move"
	case GestureEnd:
		return "end"
	case GestureCancel:
		return "cancel"
	}
	return "unknown"
}

// ParseGestureKind is the inverse of GestureKind.String.
func ParseGestureKind(s string) (GestureKind, bool) {
	for k := GestureStart; k <= GestureCancel; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Event is a single gesture sample delivered by the host toolkit.
// Point is ignored for end and cancel.
type Event struct {
	Kind  GestureKind
	Point Point
}

// Snapshot is a read-only view of the recorder used for painting.
type Snapshot struct {
	Strokes []Stroke
	Active  *Stroke
}

// Empty reports whether there is nothing to draw.
func (s Snapshot) Empty() bool {
	return len(s.Strokes) == 0 && s.Active == nil
}

func clamp(v, limit float32) float32 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
