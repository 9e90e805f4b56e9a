package model

// Finger identifies one tracked fingertip. The order is the drawing order.
type Finger int

const (
	Pinky Finger = iota
	Ring
	Middle
	Index
	Thumb

	NumFingers = 5
)

var fingerNames = [NumFingers]string{"pinky", "ring", "middle", "index", "thumb"}

func (f Finger) String() string {
	if f < 0 || int(f) >= NumFingers {
		return "unknown"
	}
	return fingerNames[f]
}

// Fingers lists every finger in drawing order.
func Fingers() []Finger {
	return []Finger{Pinky, Ring, Middle, Index, Thumb}
}

// ParseFinger maps a pinch-type label to a Finger. Labels match exactly, so
// "Index" is not a finger.
func ParseFinger(s string) (Finger, bool) {
	for i, n := range fingerNames {
		if n == s {
			return Finger(i), true
		}
	}
	return 0, false
}

// Classification labels written by the game for each hit.
const (
	Correct = "correct"
	Early   = "early"
	Late    = "late"
	Missed  = "missed"
	Skipped = "skipped"
)

// Classifications lists the known labels in display order.
func Classifications() []string {
	return []string{Correct, Early, Late, Missed, Skipped}
}

// MissedPlayerTime is what the game records as the player time of a missed or
// skipped target.
const MissedPlayerTime = -1.0

// Sample is one recorded CSV row. It is not modified after parsing.
type Sample struct {
	Layer int
	Note  int
	Loop  int

	// PinchType is kept verbatim; use Pinch to resolve it to a finger.
	PinchType      string
	PlayerTime     OptionalFloat
	CorrectTime    OptionalFloat
	Classification string

	// Time fields as written in the file, shown unchanged in the info line.
	// Empty for samples not read from a file.
	PlayerTimeText  string
	CorrectTimeText string

	TargetRadius float64 // normalized, 0 when null
	FingerRadius float64 // normalized, 0 when null
	Target       Point
	Fingers      [NumFingers]Point
}

// Pinch resolves the pinch type to a trackable finger.
func (s *Sample) Pinch() (Finger, bool) {
	return ParseFinger(s.PinchType)
}

// Finger returns the recorded position of f.
func (s *Sample) Finger(f Finger) Point {
	if f < 0 || int(f) >= NumFingers {
		return Point{}
	}
	return s.Fingers[f]
}

// PlayerPinched reports whether the player time holds a real pinch, i.e. it
// is present and not the missed-target sentinel.
func (s *Sample) PlayerPinched() bool {
	pt, ok := s.PlayerTime.Unpack()
	return ok && pt >= 0
}
