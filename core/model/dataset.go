package model

import (
	"sort"

	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

type loopNote struct{ loop, note int }

// Layer holds every sample sharing a layer id plus its lookup tables.
// A note id maps to one sample through the flat index (last row wins), while
// the loop-scoped index lets the same note id resolve per loop.
type Layer struct {
	ID      int
	Samples []Sample

	notes    map[int]int
	loopNote map[loopNote]int

	sortedNotes []int
	sortedLoops []int
	loopNotes   map[int][]int
}

func newLayer(id int) *Layer {
	return &Layer{
		ID:       id,
		notes:    map[int]int{},
		loopNote: map[loopNote]int{},
	}
}

func (l *Layer) add(s Sample) {
	idx := len(l.Samples)
	l.Samples = append(l.Samples, s)
	l.notes[s.Note] = idx
	l.loopNote[loopNote{s.Loop, s.Note}] = idx
}

// seal builds the sorted key lists once loading is finished.
func (l *Layer) seal() {
	l.sortedNotes = sortedKeys(l.notes)
	l.loopNotes = map[int][]int{}
	for k := range l.loopNote {
		l.loopNotes[k.loop] = append(l.loopNotes[k.loop], k.note)
	}
	l.sortedLoops = l.sortedLoops[:0]
	for loop, notes := range l.loopNotes {
		sort.Ints(notes)
		l.sortedLoops = append(l.sortedLoops, loop)
	}
	sort.Ints(l.sortedLoops)
}

// Notes returns the distinct note ids of the layer in ascending order.
func (l *Layer) Notes() []int { return l.sortedNotes }

// Loops returns the distinct loop ids of the layer in ascending order.
func (l *Layer) Loops() []int { return l.sortedLoops }

// LoopNotes returns the note ids recorded in loop, ascending. Nil for an unknown loop.
func (l *Layer) LoopNotes(loop int) []int { return l.loopNotes[loop] }

// HasLoop reports whether loop occurs in the layer.
func (l *Layer) HasLoop(loop int) bool {
	_, ok := l.loopNotes[loop]
	return ok
}

// NoteIndex resolves a note through the flat per-layer index.
func (l *Layer) NoteIndex(note int) (int, bool) {
	i, ok := l.notes[note]
	return i, ok
}

// LoopNoteIndex resolves a note within a loop.
func (l *Layer) LoopNoteIndex(loop, note int) (int, bool) {
	i, ok := l.loopNote[loopNote{loop, note}]
	return i, ok
}

// Sample returns the sample at i, or false when i is out of range.
func (l *Layer) Sample(i int) (*Sample, bool) {
	if l == nil || i < 0 || i >= len(l.Samples) {
		return nil, false
	}
	return &l.Samples[i], true
}

// ClassCount is the number of samples carrying one classification label.
type ClassCount struct {
	Label string
	Count int
}

// Summary tallies classifications: known labels first in display order
// (zeros included), then any other labels alphabetically.
func (l *Layer) Summary() []ClassCount {
	counts := map[string]int{}
	for i := range l.Samples {
		counts[l.Samples[i].Classification]++
	}
	var out []ClassCount
	for _, c := range Classifications() {
		out = append(out, ClassCount{Label: c, Count: counts[c]})
		delete(counts, c)
	}
	extra := make([]string, 0, len(counts))
	for label := range counts {
		extra = append(extra, label)
	}
	sort.Strings(extra)
	for _, label := range extra {
		out = append(out, ClassCount{Label: label, Count: counts[label]})
	}
	return out
}

// Dataset is the loaded recording, grouped into layers.
type Dataset struct {
	layers map[int]*Layer
	ids    []int

	Rows    int // data rows read, header excluded
	Skipped int // rows rejected as malformed

	logger *game_log.Logger
}

// NewDataset returns an empty dataset; Add samples then Seal it.
func NewDataset(logger *game_log.Logger) *Dataset {
	return &Dataset{layers: map[int]*Layer{}, logger: logger}
}

// Add appends s to its layer, creating the layer on first use.
func (d *Dataset) Add(s Sample) {
	l, ok := d.layers[s.Layer]
	if !ok {
		l = newLayer(s.Layer)
		d.layers[s.Layer] = l
		d.logger.Debugf("[CSV] New layer %d", s.Layer)
	}
	l.add(s)
}

// Seal finalizes the indexes. The dataset must not be modified afterwards.
func (d *Dataset) Seal() {
	d.ids = sortedKeys(d.layers)
	for _, l := range d.layers {
		l.seal()
	}
}

// LayerIDs returns the distinct layer ids in ascending order.
func (d *Dataset) LayerIDs() []int { return d.ids }

// Layer looks up a layer by id.
func (d *Dataset) Layer(id int) (*Layer, bool) {
	l, ok := d.layers[id]
	return l, ok
}

// Len is the number of accepted samples over all layers.
func (d *Dataset) Len() int {
	n := 0
	for _, l := range d.layers {
		n += len(l.Samples)
	}
	return n
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
