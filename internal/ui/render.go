package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/measure"
	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
)

const (
	ringWidth = 3
	textX     = 10
	textY     = 10
)

// render draws the whole frame for the current selection. An index outside
// the layer leaves a cleared screen.
func (g *Game) render(dst *ebiten.Image) {
	fillScreen(dst, g.theme.Background)
	s, ok := g.nav.Current()
	if !ok {
		return
	}
	drawRect(dst, g.canvas, g.theme.Canvas, true)
	g.drawSample(dst, s)

	drawText(dst, measure.InfoLine(s), textX, textY)
	if l, ok := g.nav.CurrentLayer(); ok {
		drawText(dst, measure.SummaryLine(l), textX, textY+debugCharH+2)
	}

	mx, my := cursorPosition()
	g.layers.draw(dst, &g.theme, g.nav.Layer(), true, mx, my)
	loop, hasLoop := g.nav.Loop()
	g.loops.draw(dst, &g.theme, loop, hasLoop, mx, my)
	note, hasNote := g.nav.Note()
	g.notes.draw(dst, &g.theme, note, hasNote, mx, my)

	g.drawOverlay(dst, s)
}

// drawSample draws the tracked fingers and the target inside the canvas.
func (g *Game) drawSample(dst *ebiten.Image, s *model.Sample) {
	fingerR := float32(int(s.FingerRadius * ScreenWidth))
	targetR := float32(int(s.TargetRadius * ScreenWidth))

	for _, f := range model.Fingers() {
		x, y, ok := s.Finger(f).Unpack()
		if !ok || fingerR <= 0 {
			continue
		}
		cx, cy := g.toScreen(x, y)
		drawCircle(dst, cx, cy, fingerR, ringWidth, g.theme.Fingers[f])
	}

	x, y, ok := s.Target.Unpack()
	if !ok || targetR <= 0 {
		return
	}
	cx, cy := g.toScreen(x, y)
	drawCircle(dst, cx, cy, targetR, 0, g.theme.TargetFill)
	if f, ok := s.Pinch(); ok {
		drawCircle(dst, cx, cy, targetR, ringWidth, g.theme.Fingers[f])
	}
}

// drawOverlay prints the pinch distance and delay above the note row.
func (g *Game) drawOverlay(dst *ebiten.Image, s *model.Sample) {
	y := g.canvas.Max.Y - debugCharH - 10
	x := textX
	if norm, px, ok := measure.PinchDistance(s, g.canvas); ok {
		txt := measure.DistanceText(norm, px)
		drawText(dst, txt, x, y)
		x += textWidth(txt) + 10
	}
	drawText(dst, measure.DelayText(s), x, y)
}

func (g *Game) toScreen(x, y float64) (float32, float32) {
	sx, sy := measure.Scale(x, y, g.canvas)
	return float32(int(sx)), float32(int(sy))
}
