package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
	"github.com/pizzicato-game/pizzicato-game.github.io/core/nav"
	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

// Game replays a recording. Every input is handled inside Update; Draw
// renders the current selection from scratch.
type Game struct {
	data   *model.Dataset
	nav    *nav.Navigator
	theme  Theme
	logger *game_log.Logger

	layers buttonRow // fixed for the lifetime of the game
	loops  buttonRow
	notes  buttonRow
	canvas image.Rectangle

	frame int64
}

func New(ds *model.Dataset, theme Theme, logger *game_log.Logger) *Game {
	g := &Game{
		data:   ds,
		nav:    nav.New(ds, logger),
		theme:  theme,
		logger: logger,
	}
	g.layers = buttonRow{label: "Layer:", y: layerRowY, buttons: layoutRow(ds.LayerIDs(), layerRowY, false)}
	g.relayout()
	return g
}

// Navigator exposes the selection state.
func (g *Game) Navigator() *nav.Navigator { return g.nav }

func (g *Game) Layout(w, h int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) Update() error {
	g.frame++
	if isWindowBeingClosed() {
		g.logger.Infof("[GAME] Window closed after %d frames", g.frame)
		return ebiten.Termination
	}
	if isKeyJustPressed(ebiten.KeyArrowLeft) {
		g.nav.Prev()
	}
	if isKeyJustPressed(ebiten.KeyArrowRight) {
		g.nav.Next()
	}
	if isMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(cursorPosition())
	}
	return nil
}

// click dispatches a left click to the control row under the cursor.
func (g *Game) click(x, y int) {
	if b, ok := g.layers.at(x, y); ok {
		g.logger.Debugf("[GAME] Layer button %d clicked", b.Key)
		if g.nav.SelectLayer(b.Key) {
			g.relayout()
		}
		return
	}
	if b, ok := g.notes.at(x, y); ok {
		g.logger.Debugf("[GAME] Note button %d clicked", b.Key)
		g.nav.SelectNote(b.Key)
		return
	}
	if b, ok := g.loops.at(x, y); ok {
		g.logger.Debugf("[GAME] Loop button %d clicked", b.Key)
		g.nav.SelectLoop(b.Key)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render(screen)
}
