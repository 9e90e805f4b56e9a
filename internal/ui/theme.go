package ui

import (
	"image/color"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
)

// Theme is the viewer palette. Colors are premultiplied, as ebiten expects.
type Theme struct {
	Background color.RGBA
	Canvas     color.RGBA
	Fingers    [model.NumFingers]color.RGBA
	TargetFill color.RGBA

	Button         color.RGBA
	ButtonSelected color.RGBA
	ButtonHover    color.RGBA
}

func DefaultTheme() Theme {
	var t Theme
	t.Background = color.RGBA{0, 0, 0, 255}
	t.Canvas = color.RGBA{50, 50, 50, 255}
	t.Fingers[model.Thumb] = color.RGBA{255, 255, 255, 255}
	t.Fingers[model.Index] = color.RGBA{228, 26, 28, 255}
	t.Fingers[model.Middle] = color.RGBA{0, 150, 255, 255}
	t.Fingers[model.Ring] = color.RGBA{255, 234, 0, 255}
	t.Fingers[model.Pinky] = color.RGBA{218, 112, 214, 255}
	t.TargetFill = color.RGBA{128, 128, 128, 128} // white at half alpha

	t.Button = color.RGBA{100, 100, 100, 255}
	t.ButtonSelected = color.RGBA{0, 128, 0, 255}
	t.ButtonHover = color.RGBA{150, 150, 150, 255}
	return t
}

// Slots exposes the palette by name for config overrides.
func (t *Theme) Slots() map[string]*color.RGBA {
	slots := map[string]*color.RGBA{
		"background":      &t.Background,
		"canvas":          &t.Canvas,
		"target":          &t.TargetFill,
		"button":          &t.Button,
		"button_selected": &t.ButtonSelected,
		"button_hover":    &t.ButtonHover,
	}
	for _, f := range model.Fingers() {
		slots[f.String()] = &t.Fingers[f]
	}
	return slots
}
