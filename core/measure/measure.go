// Package measure computes the per-sample diagnostics shown by the viewer.
package measure

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
)

// Scale maps a normalized coordinate into the pixel rectangle area.
func Scale(x, y float64, area image.Rectangle) (float64, float64) {
	return x*float64(area.Dx()) + float64(area.Min.X), y*float64(area.Dy()) + float64(area.Min.Y)
}

// Midpoint returns the point halfway between a and b; empty if either is.
func Midpoint(a, b model.Point) model.Point {
	ax, ay, okA := a.Unpack()
	bx, by, okB := b.Unpack()
	if !okA || !okB {
		return model.Point{}
	}
	return model.NewPoint((ax+bx)/2, (ay+by)/2)
}

// PinchPoint is the midpoint between the thumb and the finger named by the
// sample's pinch type.
func PinchPoint(s *model.Sample) model.Point {
	f, ok := s.Pinch()
	if !ok {
		return model.Point{}
	}
	return Midpoint(s.Finger(model.Thumb), s.Finger(f))
}

// PinchDistance measures from the pinch point to the target, in normalized
// units and in pixels of area. ok is false unless thumb, pinch finger and
// target are all tracked.
func PinchDistance(s *model.Sample, area image.Rectangle) (norm, px float64, ok bool) {
	mx, my, ok := PinchPoint(s).Unpack()
	if !ok {
		return 0, 0, false
	}
	tx, ty, ok := s.Target.Unpack()
	if !ok {
		return 0, 0, false
	}
	norm = math.Hypot(mx-tx, my-ty)
	smx, smy := Scale(mx, my, area)
	stx, sty := Scale(tx, ty, area)
	px = math.Hypot(smx-stx, smy-sty)
	return norm, px, true
}

// PinchDelay is (player - correct) in milliseconds. A null correct time counts
// as zero. ok is false when the player never pinched.
func PinchDelay(s *model.Sample) (ms float64, ok bool) {
	if !s.PlayerPinched() {
		return 0, false
	}
	pt, _ := s.PlayerTime.Unpack()
	return (pt - s.CorrectTime.Or(0)) * 1000, true
}

// FormatOptional prints a value the way it appears in the recording.
func FormatOptional(f model.OptionalFloat) string {
	v, ok := f.Unpack()
	if !ok {
		return "null"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func recorded(text string, f model.OptionalFloat) string {
	if text != "" {
		return text
	}
	return FormatOptional(f)
}

// InfoLine prints the time fields verbatim when the sample came from a file.
func InfoLine(s *model.Sample) string {
	return fmt.Sprintf("NoteID: %d, PinchType: %s, CorrectTime: %s, PlayerTime: %s, Classification: %s",
		s.Note, s.PinchType, recorded(s.CorrectTimeText, s.CorrectTime),
		recorded(s.PlayerTimeText, s.PlayerTime), s.Classification)
}

func DistanceText(norm, px float64) string {
	return fmt.Sprintf("Normalized Distance To Target: %.4f (%.2f px),", norm, px)
}

const DelayUnavailable = "Player Pinch Delay: N/A"

func DelayText(s *model.Sample) string {
	ms, ok := PinchDelay(s)
	if !ok {
		return DelayUnavailable
	}
	return fmt.Sprintf("Player Pinch Delay: %.1f ms", ms)
}

// SummaryLine describes a layer: sample and loop counts plus classifications.
func SummaryLine(l *model.Layer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Layer %d: %d samples, %d loops |", l.ID, len(l.Samples), len(l.Loops()))
	for i, c := range l.Summary() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %s %d", c.Label, c.Count)
	}
	return b.String()
}
