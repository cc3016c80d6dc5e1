package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// Flags describe which aircraft an airport can serve.
type Flags uint8

const (
	Airplanes Flags = 1 << iota
	Helicopters
	ShortStrip

	AllAircraft = Airplanes | Helicopters
)

func (f Flags) String() string {
	var parts []string
	if f&Airplanes != 0 {
		parts = append(parts, "airplanes")
	}
	if f&Helicopters != 0 {
		parts = append(parts, "helicopters")
	}
	if f&ShortStrip != 0 {
		parts = append(parts, "short-strip")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// DiagDirection is the compass side an aircraft approaches an airport from.
type DiagDirection uint8

const (
	DiagNE DiagDirection = iota
	DiagSE
	DiagSW
	DiagNW

	NumDiagDirections = 4
)

func (d DiagDirection) String() string {
	switch d {
	case DiagNE:
		return "NE"
	case DiagSE:
		return "SE"
	case DiagSW:
		return "SW"
	case DiagNW:
		return "NW"
	default:
		return fmt.Sprintf("DiagDirection(%d)", uint8(d))
	}
}

// Direction is the heading an aircraft sprite faces at a position.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// MovementFlags tell movement code how to approach a position.
type MovementFlags uint16

const (
	NoSpeedClamp MovementFlags = 1 << iota // don't limit speed
	TakeoffMove                            // takeoff movement
	SlowTurn                               // turn slowly (mostly in the air)
	LandMove                               // landing movement
	ExactPos                               // go exactly to the destination coordinates
	Brake                                  // taxiing and braking
	HeliRaise                              // helicopter take off
	HeliLower                              // helicopter landing
	Hold                                   // holding pattern movement
)

// MovingData is the sub-tile destination of a position, relative to the
// northern tile of the airport.
type MovingData struct {
	X         int16         `json:"x" yaml:"x" msgpack:"x"`
	Y         int16         `json:"y" yaml:"y" msgpack:"y"`
	Flags     MovementFlags `json:"flags,omitempty" yaml:"flags,omitempty" msgpack:"f"`
	Direction Direction     `json:"direction" yaml:"direction" msgpack:"d"`
}

// Layout is the complete data definition of one airport type. Terminals
// and Helipads use the group encoding [groups, count1, count2, ...]; both
// may be empty.
type Layout struct {
	Name        string       `json:"name" yaml:"name" msgpack:"name"`
	Rows        []ElementRow `json:"rows" yaml:"rows" msgpack:"rows"`
	MovingData  []MovingData `json:"moving_data,omitempty" yaml:"moving_data,omitempty" msgpack:"moving_data"`
	Terminals   []int        `json:"terminals,omitempty" yaml:"terminals,omitempty" msgpack:"terminals"`
	Helipads    []int        `json:"helipads,omitempty" yaml:"helipads,omitempty" msgpack:"helipads"`
	EntryPoints []Position   `json:"entry_points" yaml:"entry_points" msgpack:"entry_points"`
	Flags       Flags        `json:"flags" yaml:"flags" msgpack:"flags"`
	DeltaZ      int8         `json:"delta_z,omitempty" yaml:"delta_z,omitempty" msgpack:"delta_z"`
}

// Validate checks the shape of a layout: a name, one entry point per
// compass direction, a terminated element table and movement hints for
// every position when present. Structural checks of the automaton itself
// happen when it is built.
func (l *Layout) Validate() error {
	if l.Name == "" {
		return errors.New("layout name is required")
	}
	if len(l.EntryPoints) != NumDiagDirections {
		return fmt.Errorf("%d entry points, want %d", len(l.EntryPoints), NumDiagDirections)
	}
	if len(l.Rows) == 0 {
		return errors.New("element table is empty")
	}
	end := -1
	for i, r := range l.Rows {
		if r.IsEndMarker() {
			end = i
			break
		}
	}
	if end == -1 {
		return errors.New("element table has no end marker")
	}
	if len(l.MovingData) > 0 {
		// Positions are dense, so the last row before the marker names the
		// highest position.
		if end > 0 {
			last := int(l.Rows[end-1].Position)
			if len(l.MovingData) != last+1 {
				return fmt.Errorf("%d moving data entries for %d positions", len(l.MovingData), last+1)
			}
		}
	}
	for _, g := range []struct {
		name   string
		groups []int
	}{{"terminals", l.Terminals}, {"helipads", l.Helipads}} {
		if len(g.groups) > 0 && g.groups[0] != len(g.groups)-1 {
			return fmt.Errorf("%s: %d groups declared, %d counts given", g.name, g.groups[0], len(g.groups)-1)
		}
	}
	return nil
}

// NumRows returns the number of rows before the end marker.
func (l *Layout) NumRows() int {
	for i, r := range l.Rows {
		if r.IsEndMarker() {
			return i
		}
	}
	return len(l.Rows)
}
