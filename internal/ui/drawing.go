package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugCharW = 6  // width of a character drawn by DebugPrintAt
	debugCharH = 16 // line height of DebugPrintAt
)

// The drawing primitives are variables so tests can capture draw calls
// without a graphics context.

var fillScreen = func(dst *ebiten.Image, c color.Color) {
	dst.Fill(c)
}

var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// drawCircle draws a disc when stroke is 0, otherwise a ring stroke px wide.
var drawCircle = func(dst *ebiten.Image, cx, cy, r, stroke float32, c color.Color) {
	if stroke <= 0 {
		vector.DrawFilledCircle(dst, cx, cy, r, c, true)
		return
	}
	vector.StrokeCircle(dst, cx, cy, r, stroke, c, true)
}

var drawText = func(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

// textWidth is the pixel width of s as drawn by drawText.
func textWidth(s string) int {
	return debugCharW * len([]rune(s))
}
