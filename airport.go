// Package airportfta builds the finite state automata that route aircraft
// through an airport: which positions exist, which transitions leave each
// of them, and which shared taxiway and runway blocks a transition needs.
//
// Automata are built once from a Layout, checked by the validator and then
// only read. A Registry owns one Automaton per AirportType.
package airportfta

import (
	"slices"

	"github.com/comalice/airportfta/internal/primitives"
)

type (
	Position      = primitives.Position
	Heading       = primitives.Heading
	Block         = primitives.Block
	ElementRow    = primitives.ElementRow
	Layout        = primitives.Layout
	MovingData    = primitives.MovingData
	Flags         = primitives.Flags
	DiagDirection = primitives.DiagDirection
)

const (
	MaxElements  = primitives.MaxElements
	MaxTerminals = primitives.MaxTerminals
	MaxHelipads  = primitives.MaxHelipads
	MaxHeadings  = primitives.MaxHeadings
)

// TransitionKind tells how the heading of a transition is to be read.
type TransitionKind uint8

const (
	// KindFixed transitions carry a plain heading.
	KindFixed TransitionKind = iota
	// KindMultipleChoices heads a position whose remaining transitions are
	// the choices.
	KindMultipleChoices
	// KindTerminalGroup transitions send the aircraft to the terminal group
	// stored in Next.
	KindTerminalGroup
)

func (k TransitionKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindMultipleChoices:
		return "multiple-choices"
	case KindTerminalGroup:
		return "terminal-group"
	default:
		return "unknown"
	}
}

// Transition is one way out of a position.
type Transition struct {
	Position Position
	Heading  Heading
	Block    Block
	Next     Position
	Kind     TransitionKind
}

// Group returns the 0-based terminal group of a terminal group transition.
func (t Transition) Group() (int, bool) {
	if t.Kind != KindTerminalGroup {
		return 0, false
	}
	return int(t.Next), true
}

// State is a position together with its transitions in table order.
// Choices is never empty for a built state.
type State struct {
	Position Position
	Choices  []Transition
}

// First returns the transition taken from the first row of the position.
func (s *State) First() Transition {
	if len(s.Choices) == 0 {
		return Transition{}
	}
	return s.Choices[0]
}

// Alternatives returns the transitions following the first one.
func (s *State) Alternatives() []Transition {
	if len(s.Choices) < 2 {
		return nil
	}
	return s.Choices[1:]
}

// Find returns the first transition with heading h.
func (s *State) Find(h Heading) (Transition, bool) {
	for _, t := range s.Choices {
		if t.Heading == h {
			return t, true
		}
	}
	return Transition{}, false
}

// Automaton is the built and validated state machine of one airport
// layout. It is read-only once returned by NewAutomaton.
type Automaton struct {
	name        string
	states      []State
	movingData  []MovingData
	terminals   []int
	helipads    []int
	entryPoints [primitives.NumDiagDirections]Position
	flags       Flags
	deltaZ      int8

	numTerminals      int
	numTerminalGroups int
	numHelipads       int
	numHelipadGroups  int
}

func (a *Automaton) Name() string { return a.name }

// States returns the states indexed by position. The slice is shared with
// the automaton and must not be modified.
func (a *Automaton) States() []State { return a.states }

func (a *Automaton) NumStates() int { return len(a.states) }

// State returns the state of position p, or nil when p is out of range.
func (a *Automaton) State(p Position) *State {
	if int(p) >= len(a.states) {
		return nil
	}
	return &a.states[p]
}

// NumTransitions returns the number of transitions over all states.
func (a *Automaton) NumTransitions() int {
	n := 0
	for i := range a.states {
		n += len(a.states[i].Choices)
	}
	return n
}

// EntryPoint returns the position an aircraft arriving from dir starts at.
func (a *Automaton) EntryPoint(dir DiagDirection) Position {
	return a.entryPoints[dir]
}

// EntryPoints returns all four entry points, indexed by DiagDirection.
func (a *Automaton) EntryPoints() [primitives.NumDiagDirections]Position {
	return a.entryPoints
}

// MovingData returns the movement hint of position p.
func (a *Automaton) MovingData(p Position) (MovingData, bool) {
	if int(p) >= len(a.movingData) {
		return MovingData{}, false
	}
	return a.movingData[p], true
}

// Terminals returns a copy of the terminal group descriptor.
func (a *Automaton) Terminals() []int { return slices.Clone(a.terminals) }

// Helipads returns a copy of the helipad group descriptor.
func (a *Automaton) Helipads() []int { return slices.Clone(a.helipads) }

func (a *Automaton) NumTerminals() int      { return a.numTerminals }
func (a *Automaton) NumTerminalGroups() int { return a.numTerminalGroups }
func (a *Automaton) NumHelipads() int       { return a.numHelipads }
func (a *Automaton) NumHelipadGroups() int  { return a.numHelipadGroups }

func (a *Automaton) Flags() Flags { return a.flags }
func (a *Automaton) DeltaZ() int8 { return a.deltaZ }

// Supports reports whether every aircraft class in f may use the airport.
func (a *Automaton) Supports(f Flags) bool {
	return a.flags&f == f
}

// TerminalGroupRange returns the index of the first terminal of the
// 0-based group and the number of terminals in it.
func (a *Automaton) TerminalGroupRange(group int) (first, count int, ok bool) {
	if group < 0 || group >= a.numTerminalGroups {
		return 0, 0, false
	}
	for _, c := range a.terminals[1 : group+1] {
		first += c
	}
	return first, a.terminals[group+1], true
}
