package ui

import (
	"fmt"
	"image/color"

	"SignaturePad/internal/config"
	"SignaturePad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Ink colours offered by the pen toolbar: black, navy, blue and red.
var inks = []color.NRGBA{
	{A: 255},
	{R: 0x1a, G: 0x23, B: 0x7e, A: 255},
	{B: 255, A: 255},
	{R: 0xc6, G: 0x28, B: 0x28, A: 255},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// penToolbar lets the signer pick ink and width for the next stroke.
type penToolbar struct {
	pen      state.Pen
	swatches []*colorSwatch
	slider   *widget.Slider
	label    *widget.Label
	onChange func(state.Pen)
}

func newPenToolbar(initial state.Pen, onChange func(state.Pen)) *penToolbar {
	t := &penToolbar{pen: initial, onChange: onChange}
	for _, c := range inks {
		t.swatches = append(t.swatches, newColorSwatch(c, t.setColor))
	}
	t.label = widget.NewLabel("")
	t.slider = widget.NewSlider(1, 12)
	t.slider.Step = 0.5
	t.slider.SetValue(float64(initial.Width))
	t.slider.OnChanged = func(v float64) {
		t.pen.Width = float32(v)
		t.changed()
	}
	t.updateLabel()
	return t
}

func (t *penToolbar) setColor(c color.NRGBA) {
	t.pen.Color = c
	t.changed()
}

func (t *penToolbar) changed() {
	t.updateLabel()
	if t.onChange != nil {
		t.onChange(t.pen)
	}
}

func (t *penToolbar) updateLabel() {
	t.label.SetText(fmt.Sprintf("%s %.1fpx", config.HexColor(t.pen.Color), t.pen.Width))
}

func (t *penToolbar) content() fyne.CanvasObject {
	colorBox := container.NewHBox()
	for _, s := range t.swatches {
		colorBox.Add(s)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), t.slider)
	return container.NewHBox(
		widget.NewLabel("Ink:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderContainer,
		t.label,
		layout.NewSpacer(),
	)
}
