package state

// Recorder turns gesture events into strokes. It holds no rendering state:
// every mutation is reported through OnDirty and the owner repaints.
//
// A Recorder is driven from a single goroutine and is not safe for
// concurrent use.
type Recorder struct {
	width, height float32
	pen           Pen
	strokes       []Stroke
	active        *Stroke

	// OnDirty is called synchronously after every mutation.
	OnDirty func()
}

// NewRecorder returns an idle recorder for a width x height surface.
func NewRecorder(width, height float32, pen Pen) *Recorder {
	if pen.Width <= 0 {
		pen.Width = DefaultPen.Width
	}
	return &Recorder{
		width:   width,
		height:  height,
		pen:     pen,
		strokes: make([]Stroke, 0),
	}
}

func (r *Recorder) dirty() {
	if r.OnDirty != nil {
		r.OnDirty()
	}
}

func (r *Recorder) local(p Point) Point {
	return Point{X: clamp(p.X, r.width), Y: clamp(p.Y, r.height)}
}

// Recording reports whether a gesture is in progress.
func (r *Recorder) Recording() bool {
	return r.active != nil
}

// Pen returns the style used for the next stroke.
func (r *Recorder) Pen() Pen {
	return r.pen
}

// SetPen changes the style of subsequent strokes. The active stroke keeps
// the style it started with.
func (r *Recorder) SetPen(p Pen) {
	if p.Width <= 0 {
		return
	}
	r.pen = p
}

// Start begins a new stroke seeded with p. A stroke left open by a missing
// end event is committed first.
func (r *Recorder) Start(p Point) {
	if r.active != nil {
		r.commit()
	}
	r.active = &Stroke{
		ID:     newStrokeID(),
		Points: []Point{r.local(p)},
		Color:  r.pen.Color,
		Width:  r.pen.Width,
	}
	r.dirty()
}

// Move appends p to the active stroke.
func (r *Recorder) Move(p Point) {
	if r.active == nil {
		return
	}
	r.active.Points = append(r.active.Points, r.local(p))
	r.dirty()
}

// End commits the active stroke.
func (r *Recorder) End() {
	if r.active == nil {
		return
	}
	r.commit()
	r.dirty()
}

// Cancel handles a host-initiated interruption. The partial stroke is
// committed exactly like End.
func (r *Recorder) Cancel() {
	r.End()
}

// Finalize force-commits any active stroke, e.g. before saving.
func (r *Recorder) Finalize() {
	r.End()
}

// Discard drops the active stroke without committing it.
func (r *Recorder) Discard() {
	if r.active == nil {
		return
	}
	r.active = nil
	r.dirty()
}

// Handle dispatches ev to the matching transition.
func (r *Recorder) Handle(ev Event) {
	switch ev.Kind {
	case GestureStart:
		r.Start(ev.Point)
	case GestureMove:
		r.Move(ev.Point)
	case GestureEnd:
		r.End()
	case GestureCancel:
		r.Cancel()
	}
}

func (r *Recorder) commit() {
	r.strokes = append(r.strokes, *r.active)
	r.active = nil
}

// Clear empties both the committed strokes and the active stroke.
func (r *Recorder) Clear() {
	r.strokes = make([]Stroke, 0)
	r.active = nil
	r.dirty()
}

// Load replaces the committed strokes, dropping any active stroke.
// Points are clamped to the surface and strokes without points are skipped.
func (r *Recorder) Load(strokes []Stroke) {
	loaded := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		s = s.clone()
		for i, p := range s.Points {
			s.Points[i] = r.local(p)
		}
		if s.Width <= 0 {
			s.Width = r.pen.Width
		}
		if s.ID == "" {
			s.ID = newStrokeID()
		}
		loaded = append(loaded, s)
	}
	r.strokes = loaded
	r.active = nil
	r.dirty()
}

// Strokes returns a copy of the committed strokes.
func (r *Recorder) Strokes() []Stroke {
	out := make([]Stroke, len(r.strokes))
	for i, s := range r.strokes {
		out[i] = s.clone()
	}
	return out
}

// Active returns a copy of the in-progress stroke, or nil.
func (r *Recorder) Active() *Stroke {
	if r.active == nil {
		return nil
	}
	s := r.active.clone()
	return &s
}

// Snapshot returns the state to paint. The result shares no memory with r.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{Strokes: r.Strokes(), Active: r.Active()}
}
