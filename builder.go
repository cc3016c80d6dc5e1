package airportfta

import (
	"fmt"
	"slices"

	"github.com/comalice/airportfta/internal/primitives"
)

// CountDistinctPositions returns the number of states the element table
// describes: the number of times the position changes while scanning up
// to and including the end marker. A table that is only the end marker
// has no states.
//
// At most MaxElements rows are scanned; a table without an end marker in
// that range gives ErrUnterminatedTable.
func CountDistinctPositions(rows []ElementRow) (int, error) {
	if len(rows) == 0 {
		return 0, ErrUnterminatedTable
	}
	n := 0
	prev := rows[0].Position
	for i := 0; i < MaxElements && i < len(rows); i++ {
		if rows[i].Position != prev {
			n++
			prev = rows[i].Position
		}
		if rows[i].IsEndMarker() {
			return n, nil
		}
	}
	return 0, ErrUnterminatedTable
}

// BuildStates groups the first n positions of the table into states.
// Consecutive rows with the same position become the choices of one
// state, in table order. Rows are not checked beyond what is needed to
// stay inside the table; ValidateStates does that.
func BuildStates(rows []ElementRow, n int) ([]State, error) {
	if n > MaxElements {
		return nil, fmt.Errorf("%d states: %w", n, ErrTooManyElements)
	}
	states := make([]State, n)
	cur := 0
	for i := range states {
		if cur >= len(rows) || rows[cur].IsEndMarker() {
			return nil, fmt.Errorf("state %d: table exhausted after %d rows", i, cur)
		}
		first := rows[cur]
		s := &states[i]
		s.Position = first.Position
		s.Choices = append(s.Choices, transitionFromRow(first, true))
		for cur+1 < len(rows) && rows[cur+1].Position == s.Position {
			cur++
			s.Choices = append(s.Choices, transitionFromRow(rows[cur], false))
		}
		cur++
	}
	return states, nil
}

func transitionFromRow(r ElementRow, first bool) Transition {
	t := Transition{
		Position: r.Position,
		Heading:  r.Heading,
		Block:    r.Block,
		Next:     r.Next,
	}
	if r.Heading == primitives.TermGroup {
		if first {
			t.Kind = KindMultipleChoices
		} else {
			t.Kind = KindTerminalGroup
		}
	}
	return t
}

// NewAutomaton builds and validates the automaton of a layout. The layout
// is copied; later changes to it do not reach the automaton.
func NewAutomaton(l Layout) (*Automaton, error) {
	n, err := CountDistinctPositions(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}

	a := &Automaton{
		name:       l.Name,
		movingData: slices.Clone(l.MovingData),
		terminals:  slices.Clone(l.Terminals),
		helipads:   slices.Clone(l.Helipads),
		flags:      l.Flags,
		deltaZ:     l.DeltaZ,
	}

	a.numTerminals, a.numTerminalGroups, err = CountTerminals(l.Terminals)
	if err != nil {
		return nil, fmt.Errorf("%s: terminals: %w", l.Name, err)
	}
	if a.numTerminals > MaxTerminals {
		return nil, fmt.Errorf("%s: only a maximum of %d terminals are supported (requested %d): %w",
			l.Name, MaxTerminals, a.numTerminals, ErrTooManyTerminals)
	}
	a.numHelipads, a.numHelipadGroups, err = CountTerminals(l.Helipads)
	if err != nil {
		return nil, fmt.Errorf("%s: helipads: %w", l.Name, err)
	}
	if a.numHelipads > MaxHelipads {
		return nil, fmt.Errorf("%s: only a maximum of %d helipads are supported (requested %d): %w",
			l.Name, MaxHelipads, a.numHelipads, ErrTooManyHelipads)
	}

	for dir, p := range l.EntryPoints {
		if int(p) >= n {
			return nil, fmt.Errorf("%s: entry %s (%d) must be within the airport (maximum %d): %w",
				l.Name, DiagDirection(dir), p, n, ErrEntryPointOutOfBounds)
		}
		a.entryPoints[dir] = p
	}

	if a.states, err = BuildStates(l.Rows, n); err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}

	if idx := ValidateStates(a.states, l.Terminals); idx != MaxElements {
		return nil, &ValidationError{Airport: l.Name, Index: idx}
	}
	return a, nil
}
