package state

// Rect is an axis aligned box in surface coordinates.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Bounds returns the box covering every point of strokes, padded by half
// the widest pen so round caps are not cut. ok is false when there are no
// points at all.
func Bounds(strokes []Stroke) (r Rect, ok bool) {
	var minX, minY, maxX, maxY, pad float32
	for _, s := range strokes {
		for _, p := range s.Points {
			if !ok {
				minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
				ok = true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		if len(s.Points) > 0 && s.Width/2 > pad {
			pad = s.Width / 2
		}
	}
	if !ok {
		return Rect{}, false
	}
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}, true
}
