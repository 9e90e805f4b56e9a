package model

// OptionalFloat is a number that may be absent. The CSV token "null" parses
// to the empty value, so "not tracked" never collapses into zero.
type OptionalFloat struct {
	value  float64
	exists bool
}

func NewOptionalFloatOf(value float64) OptionalFloat {
	return OptionalFloat{value: value, exists: true}
}

func (f OptionalFloat) Unpack() (float64, bool) {
	return f.value, f.exists
}

func (f OptionalFloat) Empty() bool {
	return !f.exists
}

// Or returns the value, or fallback when empty.
func (f OptionalFloat) Or(fallback float64) float64 {
	if !f.exists {
		return fallback
	}
	return f.value
}

// Point is a normalized (0..1) position that is either fully tracked or absent.
type Point struct {
	X, Y   float64
	exists bool
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, exists: true}
}

func (p Point) Unpack() (x, y float64, ok bool) {
	return p.X, p.Y, p.exists
}

func (p Point) Empty() bool {
	return !p.exists
}
