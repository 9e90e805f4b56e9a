// Package nav tracks which layer, loop and note of a recording is on screen.
package nav

import (
	"sort"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

// Navigator holds the selection. When a loop and a note are both selected,
// the note is always one recorded in that loop.
type Navigator struct {
	data   *model.Dataset
	logger *game_log.Logger

	layer   int
	loop    int
	hasLoop bool
	note    int
	hasNote bool
	index   int
}

// New selects the lowest layer of ds (and its lowest loop and note).
func New(ds *model.Dataset, logger *game_log.Logger) *Navigator {
	n := &Navigator{data: ds, logger: logger}
	if ids := ds.LayerIDs(); len(ids) > 0 {
		n.SelectLayer(ids[0])
	}
	return n
}

func (n *Navigator) Layer() int { return n.layer }

func (n *Navigator) Loop() (int, bool) { return n.loop, n.hasLoop }

func (n *Navigator) Note() (int, bool) { return n.note, n.hasNote }

// Index is the sample index within the current layer.
func (n *Navigator) Index() int { return n.index }

// CurrentLayer returns the active layer.
func (n *Navigator) CurrentLayer() (*model.Layer, bool) {
	return n.data.Layer(n.layer)
}

// Current returns the sample being shown, or false if the index is out of range.
func (n *Navigator) Current() (*model.Sample, bool) {
	l, ok := n.CurrentLayer()
	if !ok {
		return nil, false
	}
	return l.Sample(n.index)
}

// SelectLayer switches layers and resets the selection to the lowest loop
// and its lowest note. A layer without loops clears the loop and note.
// Unknown layers are ignored.
func (n *Navigator) SelectLayer(id int) bool {
	l, ok := n.data.Layer(id)
	if !ok {
		n.logger.Debugf("[NAV] SelectLayer: unknown layer %d", id)
		return false
	}
	n.layer = id
	n.index = 0
	n.hasLoop, n.hasNote = false, false
	if loops := l.Loops(); len(loops) > 0 {
		n.selectLoop(l, loops[0])
	}
	n.logger.Infof("[NAV] Layer %d selected (loop=%v note=%v index=%d)", id, n.loopString(), n.noteString(), n.index)
	return true
}

// SelectLoop makes loop active and selects its lowest note.
func (n *Navigator) SelectLoop(loop int) bool {
	l, ok := n.CurrentLayer()
	if !ok || !l.HasLoop(loop) {
		n.logger.Debugf("[NAV] SelectLoop: loop %d not in layer %d", loop, n.layer)
		return false
	}
	n.selectLoop(l, loop)
	n.logger.Debugf("[NAV] Loop %d selected (note=%v index=%d)", loop, n.noteString(), n.index)
	return true
}

func (n *Navigator) selectLoop(l *model.Layer, loop int) {
	n.loop, n.hasLoop = loop, true
	notes := l.LoopNotes(loop)
	if len(notes) == 0 {
		return
	}
	if idx, ok := l.LoopNoteIndex(loop, notes[0]); ok {
		n.note, n.hasNote = notes[0], true
		n.index = idx
	}
}

// SelectNote shows note. With a loop active the note is resolved within that
// loop and a note outside it is ignored; otherwise the flat layer index is used.
func (n *Navigator) SelectNote(note int) bool {
	l, ok := n.CurrentLayer()
	if !ok {
		return false
	}
	var idx int
	if n.hasLoop {
		idx, ok = l.LoopNoteIndex(n.loop, note)
	} else {
		idx, ok = l.NoteIndex(note)
	}
	if !ok {
		n.logger.Debugf("[NAV] SelectNote: note %d not available (layer=%d loop=%v)", note, n.layer, n.loopString())
		return false
	}
	n.note, n.hasNote = note, true
	n.index = idx
	n.logger.Debugf("[NAV] Note %d selected (index=%d)", note, idx)
	return true
}

// Step moves delta notes through the current loop in note-id order. It never
// wraps: a step past either end leaves the selection unchanged.
func (n *Navigator) Step(delta int) bool {
	if !n.hasLoop || !n.hasNote {
		return false
	}
	l, ok := n.CurrentLayer()
	if !ok {
		return false
	}
	notes := l.LoopNotes(n.loop)
	pos := sort.SearchInts(notes, n.note)
	if pos >= len(notes) || notes[pos] != n.note {
		return false
	}
	next := pos + delta
	if next < 0 || next >= len(notes) {
		return false
	}
	return n.SelectNote(notes[next])
}

func (n *Navigator) Prev() bool { return n.Step(-1) }

func (n *Navigator) Next() bool { return n.Step(1) }

func (n *Navigator) loopString() interface{} {
	if !n.hasLoop {
		return "-"
	}
	return n.loop
}

func (n *Navigator) noteString() interface{} {
	if !n.hasNote {
		return "-"
	}
	return n.note
}
