// Package draw turns a stream of map clicks into an open path or a closed shape.
//
// The tracker keeps no state of its own. Callers hold the current State and
// hand it back on every click; Advance returns the next State.
package draw

import (
	"errors"
	"math"
)

// DefaultTolerance is the squared distance below which a click closes the shape.
const DefaultTolerance = 1e-6

var ErrTolerance = errors.New("draw: tolerance must be a positive number")

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Squared returns the flat-earth squared distance between a and b.
func Squared(a, b Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return dLat*dLat + dLon*dLon
}

type Kind int

const (
	Empty Kind = iota
	Open
	Closed
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "empty"
	}
}

// State is the drawing geometry held by the caller between clicks.
// The zero value is Empty.
type State struct {
	kind   Kind
	points []Coordinate
}

// Restart returns the Empty state.
func Restart() State { return State{} }

// OpenPath returns an in-progress path. With no points it is Empty.
func OpenPath(pts ...Coordinate) State {
	if len(pts) == 0 {
		return State{}
	}
	return State{kind: Open, points: clone(pts, 0)}
}

// ClosedShape returns a finished shape. With no points it is Empty.
func ClosedShape(pts ...Coordinate) State {
	if len(pts) == 0 {
		return State{}
	}
	return State{kind: Closed, points: clone(pts, 0)}
}

func (s State) Kind() Kind { return s.kind }

// Len is the number of vertices in the active geometry.
func (s State) Len() int { return len(s.points) }

// Points returns a copy of the active geometry, whatever its kind.
func (s State) Points() []Coordinate { return clone(s.points, 0) }

// Path returns the in-progress path, or nil when no path is open.
func (s State) Path() []Coordinate {
	if s.kind != Open {
		return nil
	}
	return clone(s.points, 0)
}

// Shape returns the finished shape, or nil when nothing has been closed.
func (s State) Shape() []Coordinate {
	if s.kind != Closed {
		return nil
	}
	return clone(s.points, 0)
}

// Equal reports whether s and o have the same kind and vertices.
func (s State) Equal(o State) bool {
	if s.kind != o.kind || len(s.points) != len(o.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

// Tracker applies clicks to a State. The zero value uses DefaultTolerance.
type Tracker struct {
	Tolerance float64
}

func NewTracker(tolerance float64) (Tracker, error) {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance <= 0 {
		return Tracker{}, ErrTolerance
	}
	return Tracker{Tolerance: tolerance}, nil
}

func (t Tracker) tolerance() float64 {
	if t.Tolerance > 0 {
		return t.Tolerance
	}
	return DefaultTolerance
}

// Advance applies one click to current and returns the next state.
//
// The boolean is false when click or current is nil; the returned State is
// then meaningless and the caller should keep what it has.
func (t Tracker) Advance(click *Coordinate, current *State) (State, bool) {
	if click == nil || current == nil {
		return State{}, false
	}
	if current.kind != Open {
		return State{kind: Open, points: []Coordinate{*click}}, true
	}
	if Squared(current.points[0], *click) < t.tolerance() {
		return State{kind: Closed, points: clone(current.points, 0)}, true
	}
	next := clone(current.points, 1)
	next = append(next, *click)
	return State{kind: Open, points: next}, true
}

// Advance runs a Tracker with DefaultTolerance.
func Advance(click *Coordinate, current *State) (State, bool) {
	return Tracker{}.Advance(click, current)
}

func clone(pts []Coordinate, extra int) []Coordinate {
	if pts == nil {
		return nil
	}
	out := make([]Coordinate, len(pts), len(pts)+extra)
	copy(out, pts)
	return out
}
