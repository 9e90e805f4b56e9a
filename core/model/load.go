package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

// Column positions of the recording format.
const (
	colLayer = iota
	colNote
	colPinchType
	colLoop
	colPlayerTime
	colCorrectTime
	colClassification
	colTargetRadius
	colTargetX
	colTargetY
	colFingerRadius
	colPinkyX // followed by pinky y, then ring, middle, index, thumb pairs

	MinColumns = colPinkyX + 2*NumFingers
)

// nullToken marks an absent value in numeric columns.
const nullToken = "null"

// ErrNoData is returned when no row of the file could be used.
var ErrNoData = errors.New("no valid data found in CSV file")

// RowError describes why a single data row was rejected.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, logger *game_log.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening recording")
	}
	defer f.Close()
	ds, err := Load(f, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return ds, nil
}

// Load reads a recording: one header line, then one sample per row.
// Malformed rows are logged and skipped. ErrNoData is returned when nothing
// survives.
func Load(r io.Reader, logger *game_log.Logger) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	ds := NewDataset(logger)
	header := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, errors.Wrap(err, "reading CSV")
			}
			if header {
				header = false
				continue
			}
			ds.Rows++
			ds.Skipped++
			logger.Warnf("[CSV] Skipping invalid row: %v", perr)
			continue
		}
		if header {
			header = false
			continue
		}
		ds.Rows++
		line, _ := cr.FieldPos(0)
		s, rerr := parseRow(rec, line)
		if rerr != nil {
			ds.Skipped++
			logger.Warnf("[CSV] Skipping invalid row: %v %v", rerr, rec)
			continue
		}
		ds.Add(s)
	}
	if ds.Len() == 0 {
		logger.Errorf("[CSV] No valid data found in CSV file (%d rows read)", ds.Rows)
		return nil, ErrNoData
	}
	ds.Seal()
	logger.Infof("[CSV] Loaded %d samples in %d layers (%d rows skipped)", ds.Len(), len(ds.LayerIDs()), ds.Skipped)
	return ds, nil
}

// rowParser accumulates the first field error so parseRow reads straight through.
type rowParser struct {
	rec  []string
	line int
	err  *RowError
}

func (p *rowParser) fail(col int, what string) {
	if p.err == nil {
		p.err = &RowError{Line: p.line, Reason: fmt.Sprintf("column %d: %s %q", col, what, p.rec[col])}
	}
}

func (p *rowParser) field(col int) string {
	return strings.TrimSpace(p.rec[col])
}

func (p *rowParser) integer(col int) int {
	v, err := strconv.Atoi(p.field(col))
	if err != nil {
		p.fail(col, "invalid integer")
	}
	return v
}

func (p *rowParser) number(col int) float64 {
	v, err := strconv.ParseFloat(p.field(col), 64)
	if err != nil {
		p.fail(col, "invalid number")
	}
	return v
}

func (p *rowParser) optional(col int) OptionalFloat {
	if p.field(col) == nullToken {
		return OptionalFloat{}
	}
	return NewOptionalFloatOf(p.number(col))
}

// pair reads an x,y pair where a null x means the finger was not tracked.
func (p *rowParser) pair(col int) Point {
	if p.field(col) == nullToken {
		return Point{}
	}
	return NewPoint(p.number(col), p.number(col+1))
}

func parseRow(rec []string, line int) (Sample, error) {
	if len(rec) < MinColumns {
		return Sample{}, &RowError{Line: line, Reason: fmt.Sprintf("expected at least %d columns, got %d", MinColumns, len(rec))}
	}
	p := &rowParser{rec: rec, line: line}
	s := Sample{
		Layer:          p.integer(colLayer),
		Note:           p.integer(colNote),
		PinchType:      p.field(colPinchType),
		Loop:           p.integer(colLoop),
		PlayerTime:     p.optional(colPlayerTime),
		CorrectTime:    p.optional(colCorrectTime),
		Classification: p.field(colClassification),
		TargetRadius:   p.optional(colTargetRadius).Or(0),
		FingerRadius:   p.optional(colFingerRadius).Or(0),

		PlayerTimeText:  p.field(colPlayerTime),
		CorrectTimeText: p.field(colCorrectTime),
	}
	tx, txOK := p.optional(colTargetX).Unpack()
	ty, tyOK := p.optional(colTargetY).Unpack()
	if txOK && tyOK {
		s.Target = NewPoint(tx, ty)
	}
	for f := 0; f < NumFingers; f++ {
		s.Fingers[f] = p.pair(colPinkyX + 2*f)
	}
	if p.err != nil {
		return Sample{}, p.err
	}
	return s, nil
}
