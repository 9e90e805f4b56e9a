package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	rowHeight   = 30 // button height
	rowStride   = 35 // vertical distance between control rows
	rowsX       = 60 // left edge of the first button; labels sit before it
	labelX      = 10
	buttonPad   = 10 // horizontal padding around a label
	buttonGap   = 5
	rightMargin = 10
	canvasGap   = 4 // space between the canvas and the note row
)

// Control rows from the bottom of the window up.
var (
	layerRowY = ScreenHeight - rowStride
	loopRowY  = ScreenHeight - 2*rowStride
	noteRowY  = ScreenHeight - 3*rowStride
)

// buttonRow is one labelled line of buttons.
type buttonRow struct {
	label   string
	y       int
	buttons []*Button
}

// layoutRow lays keys out left to right from rowsX, each button sized to its
// label plus padding. With fit set, widths and gaps are scaled by one common
// factor whenever the natural row would not fit the window.
func layoutRow(keys []int, y int, fit bool) []*Button {
	buttons := make([]*Button, len(keys))
	total := 0
	for i, k := range keys {
		buttons[i] = newButton(k)
		total += textWidth(buttons[i].Text) + buttonPad + buttonGap
	}

	scale := 1.0
	if avail := ScreenWidth - rowsX - rightMargin; fit && total > avail {
		scale = float64(avail) / float64(total)
	}

	x := rowsX
	for _, b := range buttons {
		w := textWidth(b.Text) + buttonPad
		bw := int(float64(w) * scale)
		adv := int(float64(w+buttonGap) * scale)
		b.SetRect(image.Rect(x, y, x+bw, y+rowHeight))
		x += adv
	}
	return buttons
}

// at returns the button under (x,y).
func (r *buttonRow) at(x, y int) (*Button, bool) {
	for _, b := range r.buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return nil, false
}

func (r *buttonRow) draw(dst *ebiten.Image, t *Theme, selected int, hasSelected bool, mx, my int) {
	for _, b := range r.buttons {
		b.Draw(dst, t, b.state(selected, hasSelected, mx, my))
	}
	drawText(dst, r.label, labelX, r.y+rowHeight/2-debugCharH/2)
}

// relayout rebuilds the loop and note rows for the active layer and returns
// the bottom edge of the canvas, which always clears the note row.
func (g *Game) relayout() int {
	g.loops = buttonRow{label: "Loop:", y: loopRowY}
	g.notes = buttonRow{label: "Note:", y: noteRowY}
	if l, ok := g.nav.CurrentLayer(); ok {
		g.loops.buttons = layoutRow(l.Loops(), loopRowY, false)
		g.notes.buttons = layoutRow(l.Notes(), noteRowY, true)
	}
	g.canvas = image.Rect(0, 0, ScreenWidth, noteRowY-canvasGap)
	g.logger.Debugf("[GAME] relayout: layer=%d loops=%d notes=%d canvas=%v", g.nav.Layer(), len(g.loops.buttons), len(g.notes.buttons), g.canvas)
	return g.canvas.Max.Y
}
