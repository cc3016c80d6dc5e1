package airportfta

import "github.com/comalice/airportfta/internal/primitives"

// ValidateStates runs a rough static check of built states against the
// terminal group descriptor. It returns MaxElements when every state
// passes and otherwise the index of the first failing state.
//
// Passing does not mean aircraft can use the airport without deadlock;
// only the encoding of the table is checked:
//   - states are ordered by position without gaps;
//   - headings above MaxHeadings are only TermGroup markers, which need
//     alternatives when they head a state and otherwise name an existing
//     terminal group;
//   - a ToAll transition is the last one of its state;
//   - every transition belongs to its state and leads to an existing one.
func ValidateStates(states []State, terminals []int) int {
	groups := 0
	if len(terminals) > 0 {
		groups = terminals[0]
	}

	for i := range states {
		s := &states[i]
		if int(s.Position) != i {
			return i
		}
		for j, t := range s.Choices {
			last := j == len(s.Choices)-1
			if t.Heading > MaxHeadings {
				if t.Heading != primitives.TermGroup {
					return i
				}
				if j == 0 && last {
					return i
				}
				if j > 0 && int(t.Next) > groups {
					return i
				}
			}
			if t.Heading == primitives.ToAll && !last {
				return i
			}
			if t.Position != s.Position {
				return i
			}
			if int(t.Next) >= len(states) {
				return i
			}
		}
	}
	return MaxElements
}
