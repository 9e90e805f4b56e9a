package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(os.Stdout, game_log.LevelError)
}

const header = "layerID,noteID,pinchType,loopNumber,playerTime,correctTime,classification," +
	"targetRadius,targetX,targetY,fingerRadius,pinkyX,pinkyY,ringX,ringY,middleX,middleY,indexX,indexY,thumbX,thumbY"

// row builds a complete data row: index at (0.5,0.3), thumb at (0.3,0.3), target at (0.4,0.3).
func row(layer, note int, pinch string, loop int, player, correct string) string {
	return fmt.Sprintf("%d,%d,%s,%d,%s,%s,correct,0.05,0.4,0.3,0.02,0.1,0.2,0.2,0.2,0.3,0.2,0.5,0.3,0.3,0.3",
		layer, note, pinch, loop, player, correct)
}

func csvOf(rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestLoadParsesRow(t *testing.T) {
	ds, err := Load(strings.NewReader(csvOf(row(0, 3, "index", 1, "1.25", "1.2"))), testLogger)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l, ok := ds.Layer(0)
	if !ok || len(l.Samples) != 1 {
		t.Fatalf("expected layer 0 with one sample, got %v %v", ok, l)
	}
	s := l.Samples[0]
	if s.Note != 3 || s.Loop != 1 || s.PinchType != "index" || s.Classification != Correct {
		t.Fatalf("unexpected identity fields: %+v", s)
	}
	if pt, ok := s.PlayerTime.Unpack(); !ok || pt != 1.25 {
		t.Fatalf("player time = %v,%v", pt, ok)
	}
	if f, ok := s.Pinch(); !ok || f != Index {
		t.Fatalf("pinch = %v,%v", f, ok)
	}
	x, y, ok := s.Finger(Index).Unpack()
	if !ok || x != 0.5 || y != 0.3 {
		t.Fatalf("index finger = %v,%v,%v", x, y, ok)
	}
	if _, _, ok := s.Target.Unpack(); !ok {
		t.Fatalf("target should be tracked")
	}
	if s.TargetRadius != 0.05 || s.FingerRadius != 0.02 {
		t.Fatalf("radii = %v %v", s.TargetRadius, s.FingerRadius)
	}
}

func TestLoadKeepsTimeText(t *testing.T) {
	ds, err := Load(strings.NewReader(csvOf(row(0, 1, "index", 0, "1.200", "null"))), testLogger)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l, _ := ds.Layer(0)
	s := l.Samples[0]
	if s.PlayerTimeText != "1.200" || s.CorrectTimeText != "null" {
		t.Fatalf("time text = %q %q, want %q %q", s.PlayerTimeText, s.CorrectTimeText, "1.200", "null")
	}
	if pt, _ := s.PlayerTime.Unpack(); pt != 1.2 {
		t.Fatalf("player time = %v, want 1.2", pt)
	}
}

func TestLoadNullIsAbsentNotZero(t *testing.T) {
	r := "0,1,thumb,0,null,null,missed,null,null,0.5,null," +
		"null,null,0.2,0.2,null,0.9,0.5,0.3,null,null"
	ds, err := Load(strings.NewReader(csvOf(r)), testLogger)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l, _ := ds.Layer(0)
	s := l.Samples[0]
	if !s.PlayerTime.Empty() || !s.CorrectTime.Empty() {
		t.Fatalf("null times must be absent: %+v %+v", s.PlayerTime, s.CorrectTime)
	}
	if !s.Target.Empty() {
		t.Fatalf("target with null x must be absent")
	}
	for _, f := range []Finger{Pinky, Middle, Thumb} {
		if !s.Finger(f).Empty() {
			t.Fatalf("%v should be absent", f)
		}
	}
	if s.Finger(Ring).Empty() || s.Finger(Index).Empty() {
		t.Fatalf("ring and index should be tracked")
	}
	if s.TargetRadius != 0 || s.FingerRadius != 0 {
		t.Fatalf("null radii fall back to zero")
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	badLayer := strings.Replace(row(0, 4, "ring", 0, "1", "1"), "0,4", "x,4", 1)
	badFingerY := "0,5,index,0,1,1,correct,0.05,0.4,0.3,0.02,0.1,oops,0.2,0.2,0.3,0.2,0.5,0.3,0.3,0.3"
	rows := []string{
		row(0, 1, "index", 0, "1", "1"),
		"0,2,index,0,1,1",
		row(0, 3, "index", 0, "abc", "1"),
		badLayer,
		row(1, 1, "middle", 0, "2", "2"),
		badFingerY,
	}
	ds, err := Load(strings.NewReader(csvOf(rows...)), testLogger)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Rows != len(rows) {
		t.Fatalf("Rows = %d, want %d", ds.Rows, len(rows))
	}
	if ds.Skipped != 4 {
		t.Fatalf("Skipped = %d, want 4", ds.Skipped)
	}
	if ds.Len() != ds.Rows-ds.Skipped {
		t.Fatalf("accepted %d != rows %d - skipped %d", ds.Len(), ds.Rows, ds.Skipped)
	}
}

func TestLoadNoData(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"header only": header + "\n",
		"all invalid": csvOf("1,2,3", "a,b,c,d,e,f,g,h,i,j,k,l,m,n,o,p,q,r,s,t,u"),
	}
	for name, in := range cases {
		_, err := Load(strings.NewReader(in), testLogger)
		if err != ErrNoData {
			t.Fatalf("%s: err = %v, want ErrNoData", name, err)
		}
	}
}

func TestLoadExtraColumnsAccepted(t *testing.T) {
	ds, err := Load(strings.NewReader(csvOf(row(2, 1, "pinky", 0, "1", "1")+",extra,cols")), testLogger)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.LayerIDs(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("LayerIDs = %v", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rec.csv")
	if err := os.WriteFile(path, []byte(csvOf(row(0, 1, "index", 0, "1", "1"))), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, testLogger); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.csv"), testLogger); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte(header+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty, testLogger); errors.Cause(err) != ErrNoData {
		t.Fatalf("LoadFile(empty) = %v, want ErrNoData cause", err)
	}
}
