package audio

import "math"

// RampKind is how a curve reaches a point from the previous one.
type RampKind int

const (
	// Step jumps to the value at the point's time.
	Step RampKind = iota
	// Linear interpolates linearly from the previous point.
	Linear
	// Exponential interpolates geometrically from the previous point.
	Exponential
)

// Point is a value a curve reaches at a time.
type Point struct {
	Time  float64
	Value float64
	Kind  RampKind
}

// Curve is a time-ordered automation of a parameter.
type Curve []Point

func SetAt(v, t float64) Point         { return Point{Time: t, Value: v, Kind: Step} }
func LinearTo(v, t float64) Point      { return Point{Time: t, Value: v, Kind: Linear} }
func ExponentialTo(v, t float64) Point { return Point{Time: t, Value: v, Kind: Exponential} }

// Constant is a curve that holds v forever.
func Constant(v float64) Curve { return Curve{SetAt(v, 0)} }

// At returns the value of the curve at time t. Before the first point the
// curve is zero; after the last point it holds the last value.
func (c Curve) At(t float64) float64 {
	if len(c) == 0 || t < c[0].Time {
		return 0
	}
	prev := c[0]
	for _, p := range c[1:] {
		if t < p.Time {
			return interpolate(prev, p, t)
		}
		prev = p
	}
	return prev.Value
}

func interpolate(from, to Point, t float64) float64 {
	span := to.Time - from.Time
	if span <= 0 {
		return to.Value
	}
	frac := (t - from.Time) / span
	switch to.Kind {
	case Linear:
		return from.Value + (to.Value-from.Value)*frac
	case Exponential:
		// Geometric interpolation is undefined across zero or a sign change.
		if from.Value == 0 || from.Value*to.Value < 0 {
			return from.Value
		}
		return from.Value * math.Pow(to.Value/from.Value, frac)
	default:
		return from.Value
	}
}
