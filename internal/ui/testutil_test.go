package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

var testLogger = game_log.Discard()

// recorder captures every primitive drawn during a frame.
type recorder struct {
	ops []string
}

func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.ops {
		if strings.HasPrefix(op, "text ") {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) has(prefix string) bool {
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			return true
		}
	}
	return false
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

// record swaps the drawing primitives for r until the test ends.
func record(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	oldFill, oldRect, oldCircle, oldText := fillScreen, drawRect, drawCircle, drawText
	fillScreen = func(_ *ebiten.Image, c color.Color) {
		r.ops = append(r.ops, fmt.Sprintf("fill %v", c))
	}
	drawRect = func(_ *ebiten.Image, rect image.Rectangle, c color.Color, filled bool) {
		r.ops = append(r.ops, fmt.Sprintf("rect %v %v %t", rect, c, filled))
	}
	drawCircle = func(_ *ebiten.Image, cx, cy, rad, stroke float32, c color.Color) {
		r.ops = append(r.ops, fmt.Sprintf("circle %v,%v r=%v w=%v %v", cx, cy, rad, stroke, c))
	}
	drawText = func(_ *ebiten.Image, s string, x, y int) {
		r.ops = append(r.ops, fmt.Sprintf("text %q %d,%d", s, x, y))
	}
	t.Cleanup(func() {
		fillScreen, drawRect, drawCircle, drawText = oldFill, oldRect, oldCircle, oldText
	})
	return r
}

func noKeys(ebiten.Key) bool { return false }

func noClose() bool { return false }

// click simulates a left click at (x,y) for a single Update.
func click(t *testing.T, g *Game, x, y int) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft },
		noKeys,
		noClose,
	)
	defer restore()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// press simulates one key press for a single Update.
func press(t *testing.T, g *Game, k ebiten.Key) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return 0, 0 },
		func(ebiten.MouseButton) bool { return false },
		func(key ebiten.Key) bool { return key == k },
		noClose,
	)
	defer restore()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// hover parks the cursor at (x,y) until the test ends.
func hover(t *testing.T, x, y int) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(ebiten.MouseButton) bool { return false },
		noKeys,
		noClose,
	)
	t.Cleanup(restore)
}

// sample returns a fully tracked sample for (layer, loop, note).
func sample(layer, loop, note int) model.Sample {
	s := model.Sample{
		Layer:          layer,
		Loop:           loop,
		Note:           note,
		PinchType:      "index",
		Classification: model.Correct,
		PlayerTime:     model.NewOptionalFloatOf(1.25),
		CorrectTime:    model.NewOptionalFloatOf(1.2),
		TargetRadius:   0.05,
		FingerRadius:   0.02,
		Target:         model.NewPoint(0.4, 0.3),
	}
	for _, f := range model.Fingers() {
		s.Fingers[f] = model.NewPoint(0.1*float64(f+1), 0.5)
	}
	s.Fingers[model.Thumb] = model.NewPoint(0.3, 0.3)
	s.Fingers[model.Index] = model.NewPoint(0.5, 0.3)
	return s
}

func newTestGame(t *testing.T, samples ...model.Sample) *Game {
	t.Helper()
	ds := model.NewDataset(testLogger)
	for _, s := range samples {
		ds.Add(s)
	}
	ds.Seal()
	hover(t, -1, -1)
	return New(ds, DefaultTheme(), testLogger)
}

func center(b *Button) (int, int) {
	r := b.Rect()
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

// clickButton clicks the middle of the button with key in row.
func clickButton(t *testing.T, g *Game, row *buttonRow, key int) {
	t.Helper()
	x, y := center(buttonFor(t, row, key))
	click(t, g, x, y)
}

func buttonFor(t *testing.T, row *buttonRow, key int) *Button {
	t.Helper()
	for _, b := range row.buttons {
		if b.Key == key {
			return b
		}
	}
	t.Fatalf("no button %d in row %q", key, row.label)
	return nil
}
