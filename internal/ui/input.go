package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition           = ebiten.CursorPosition
	isMouseButtonJustPressed = inpututil.IsMouseButtonJustPressed
	isKeyJustPressed         = inpututil.IsKeyJustPressed
	isWindowBeingClosed      = ebiten.IsWindowBeingClosed
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	closing func() bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonJustPressed
	oldKey := isKeyJustPressed
	oldClosing := isWindowBeingClosed
	cursorPosition = cursor
	isMouseButtonJustPressed = mouse
	isKeyJustPressed = key
	isWindowBeingClosed = closing
	return func() {
		cursorPosition = oldCursor
		isMouseButtonJustPressed = oldMouse
		isKeyJustPressed = oldKey
		isWindowBeingClosed = oldClosing
	}
}
