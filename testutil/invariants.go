// Package testutil holds checks shared by the tests of the automaton
// builder, the registry and the tooling.
package testutil

import (
	"fmt"
	"testing"

	"github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/primitives"
)

// AutomatonErrors checks a built automaton against the layout it was built
// from and returns every violated property:
//   - each table row ends up as exactly one transition;
//   - the state count equals the number of position changes in the table;
//   - state i sits at position i and owns only transitions of position i;
//   - a ToAll transition is the last of its state;
//   - transitions and entry points stay inside the automaton;
//   - the validator accepts the states.
func AutomatonErrors(a *airportfta.Automaton, l airportfta.Layout) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{l.Name}, args...)...))
	}

	states := a.States()
	if got, want := a.NumTransitions(), l.NumRows(); got != want {
		fail("%d transitions for %d rows", got, want)
	}
	if got, want := len(states), positionChanges(l.Rows); got != want {
		fail("%d states for %d position changes", got, want)
	}

	for i, s := range states {
		if int(s.Position) != i {
			fail("state %d at position %d", i, s.Position)
		}
		if len(s.Choices) == 0 {
			fail("state %d has no transitions", i)
		}
		for j, c := range s.Choices {
			if c.Position != s.Position {
				fail("state %d choice %d belongs to position %d", i, j, c.Position)
			}
			if c.Heading == primitives.ToAll && j != len(s.Choices)-1 {
				fail("state %d: to-all choice %d is not last", i, j)
			}
			if int(c.Next) >= len(states) {
				fail("state %d choice %d: next %d out of range", i, j, c.Next)
			}
		}
	}

	for dir, p := range a.EntryPoints() {
		if int(p) >= len(states) {
			fail("entry %s (%d) out of range", primitives.DiagDirection(dir), p)
		}
	}

	if idx := airportfta.ValidateStates(states, a.Terminals()); idx != airportfta.MaxElements {
		fail("validator rejects element %d", idx)
	}
	return errs
}

// CheckAutomaton reports every error of AutomatonErrors through tb.
func CheckAutomaton(tb testing.TB, a *airportfta.Automaton, l airportfta.Layout) {
	tb.Helper()
	for _, err := range AutomatonErrors(a, l) {
		tb.Error(err)
	}
}

func positionChanges(rows []primitives.ElementRow) int {
	if len(rows) == 0 {
		return 0
	}
	n := 0
	prev := rows[0].Position
	for _, r := range rows {
		if r.Position != prev {
			n++
			prev = r.Position
		}
		if r.IsEndMarker() {
			break
		}
	}
	return n
}
