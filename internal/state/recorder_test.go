package state

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder() (*Recorder, *int) {
	r := NewRecorder(100, 50, DefaultPen)
	dirty := 0
	r.OnDirty = func() { dirty++ }
	return r, &dirty
}

func TestSingleStroke(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{10, 10})
	r.Move(Point{20, 10})
	r.Move(Point{20, 20})
	r.End()

	strokes := r.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []Point{{10, 10}, {20, 10}, {20, 20}}, strokes[0].Points)
	assert.Equal(t, DefaultPen.Color, strokes[0].Color)
	assert.Equal(t, DefaultPen.Width, strokes[0].Width)
	assert.NotEmpty(t, strokes[0].ID)
	assert.Nil(t, r.Active())
	assert.False(t, r.Recording())
}

func TestCancelCommitsPartialStroke(t *testing.T) {
	r, _ := newTestRecorder()
	r.Handle(Event{Kind: GestureStart, Point: Point{5, 5}})
	r.Handle(Event{Kind: GestureMove, Point: Point{8, 8}})
	r.Handle(Event{Kind: GestureCancel})

	strokes := r.Strokes()
	require.Len(t, strokes, 1)
	assert.Len(t, strokes[0].Points, 2)
	assert.Nil(t, r.Active())
}

func TestEachCycleAddsOneStroke(t *testing.T) {
	r, _ := newTestRecorder()
	for i := 0; i < 5; i++ {
		r.Start(Point{1, 1})
		for j := 0; j < i; j++ {
			r.Move(Point{float32(j), 2})
		}
		r.End()
		assert.Len(t, r.Strokes(), i+1)
	}
}

func TestStrokeOrderIsTemporal(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{1, 1})
	r.End()
	r.Start(Point{2, 2})
	r.End()

	strokes := r.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, Point{1, 1}, strokes[0].Points[0])
	assert.Equal(t, Point{2, 2}, strokes[1].Points[0])
	assert.NotEqual(t, strokes[0].ID, strokes[1].ID)
}

func TestIdleEventsAreIgnored(t *testing.T) {
	r, dirty := newTestRecorder()
	r.Move(Point{1, 1})
	r.End()
	r.Cancel()
	r.Discard()

	assert.Empty(t, r.Strokes())
	assert.Zero(t, *dirty)
}

func TestEveryMutationSignalsDirty(t *testing.T) {
	r, dirty := newTestRecorder()
	r.Start(Point{1, 1})
	assert.Equal(t, 1, *dirty)
	r.Move(Point{2, 2})
	assert.Equal(t, 2, *dirty)
	r.End()
	assert.Equal(t, 3, *dirty)
	r.Clear()
	assert.Equal(t, 4, *dirty)
}

func TestStartWhileRecordingCommitsPrevious(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{1, 1})
	r.Move(Point{2, 2})
	r.Start(Point{3, 3})

	require.Len(t, r.Strokes(), 1)
	require.NotNil(t, r.Active())
	assert.Equal(t, []Point{{3, 3}}, r.Active().Points)
}

func TestClear(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{1, 1})
	r.End()
	r.Start(Point{2, 2})
	r.Clear()

	assert.Empty(t, r.Strokes())
	assert.Nil(t, r.Active())
	assert.True(t, r.Snapshot().Empty())
}

func TestDiscardDropsActive(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{1, 1})
	r.End()
	r.Start(Point{2, 2})
	r.Discard()

	assert.Len(t, r.Strokes(), 1)
	assert.Nil(t, r.Active())
}

func TestOutOfBoundsPointsAreClamped(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{-20, 10})
	r.Move(Point{500, 500})
	r.Move(Point{float32(math.NaN()), float32(math.Inf(1))})
	r.End()

	strokes := r.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []Point{{0, 10}, {100, 50}, {0, 50}}, strokes[0].Points)
}

func TestSetPenAppliesToNextStroke(t *testing.T) {
	r, _ := newTestRecorder()
	red := Pen{Color: color.NRGBA{R: 255, A: 255}, Width: 6}
	r.Start(Point{1, 1})
	r.SetPen(red)
	r.End()
	r.Start(Point{2, 2})
	r.End()

	strokes := r.Strokes()
	assert.Equal(t, DefaultPen.Color, strokes[0].Color)
	assert.Equal(t, red.Color, strokes[1].Color)
	assert.Equal(t, float32(6), strokes[1].Width)

	r.SetPen(Pen{Width: 0})
	assert.Equal(t, red, r.Pen())
}

func TestSnapshotIsIsolated(t *testing.T) {
	r, _ := newTestRecorder()
	r.Start(Point{1, 1})
	r.Move(Point{2, 2})
	snap := r.Snapshot()
	snap.Active.Points[0] = Point{9, 9}

	assert.Equal(t, Point{1, 1}, r.Active().Points[0])
}

func TestLoad(t *testing.T) {
	r, dirty := newTestRecorder()
	r.Start(Point{1, 1})
	r.Load([]Stroke{
		{Points: []Point{{1, 2}, {300, 2}}},
		{ID: "empty"},
		{ID: "kept", Points: []Point{{4, 4}}, Width: 4},
	})

	strokes := r.Strokes()
	require.Len(t, strokes, 2)
	assert.NotEmpty(t, strokes[0].ID)
	assert.Equal(t, Point{100, 2}, strokes[0].Points[1])
	assert.Equal(t, DefaultPen.Width, strokes[0].Width)
	assert.Equal(t, "kept", strokes[1].ID)
	assert.Nil(t, r.Active())
	assert.Equal(t, 2, *dirty)
}

func TestIsDot(t *testing.T) {
	assert.True(t, Stroke{Points: []Point{{1, 1}}}.IsDot())
	assert.True(t, Stroke{Points: []Point{{1, 1}, {1, 1}}}.IsDot())
	assert.False(t, Stroke{Points: []Point{{1, 1}, {1, 2}}}.IsDot())
	assert.False(t, Stroke{}.IsDot())
}

func TestGestureKindRoundTrip(t *testing.T) {
	for k := GestureStart; k <= GestureCancel; k++ {
		got, ok := ParseGestureKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseGestureKind("pinch")
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	b, ok := Bounds([]Stroke{
		{Points: []Point{{10, 20}, {30, 5}}, Width: 2},
		{Points: []Point{{15, 40}}, Width: 4},
	})
	require.True(t, ok)
	assert.Equal(t, Rect{X: 8, Y: 3, Width: 24, Height: 39}, b)
	assert.True(t, b.Contains(Point{10, 20}))
	assert.False(t, b.Contains(Point{50, 50}))
}
