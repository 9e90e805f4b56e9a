package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

type buttonState int

const (
	stateDefault buttonState = iota
	stateSelected
	stateHover
)

// Button is a clickable rectangle standing for one layer, loop or note id.
type Button struct {
	r    image.Rectangle
	Key  int
	Text string
}

func newButton(key int) *Button {
	return &Button{Key: key, Text: strconv.Itoa(key)}
}

// Rect returns the button's bounds.
func (b *Button) Rect() image.Rectangle { return b.r }

// SetRect sets the button's bounds.
func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Contains reports whether (x,y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.r)
}

// textRect returns the rectangle occupied by the centered label.
func (b *Button) textRect() image.Rectangle {
	w := textWidth(b.Text)
	h := debugCharH
	x := b.r.Min.X + (b.r.Dx()-w)/2
	y := b.r.Min.Y + (b.r.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// state picks the visual state: selected wins over hover.
func (b *Button) state(selected int, hasSelected bool, mx, my int) buttonState {
	switch {
	case hasSelected && b.Key == selected:
		return stateSelected
	case b.Contains(mx, my):
		return stateHover
	default:
		return stateDefault
	}
}

func (b *Button) fill(t *Theme, s buttonState) color.Color {
	switch s {
	case stateSelected:
		return t.ButtonSelected
	case stateHover:
		return t.ButtonHover
	default:
		return t.Button
	}
}

// Draw renders the button and its label.
func (b *Button) Draw(dst *ebiten.Image, t *Theme, s buttonState) {
	drawRect(dst, b.r, b.fill(t, s), true)
	tr := b.textRect()
	drawText(dst, b.Text, tr.Min.X, tr.Min.Y)
}
