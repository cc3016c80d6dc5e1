package airportfta_test

import (
	"errors"
	"testing"

	. "github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/primitives"
)

const (
	blockA = primitives.Term1Block
	blockB = primitives.Term2Block
	blockC = primitives.Term3Block
	blockD = primitives.Term4Block
)

func rows(r ...ElementRow) []ElementRow {
	return append(r, primitives.EndMarker)
}

func loopRows() []ElementRow {
	return rows(
		ElementRow{Position: 0, Heading: primitives.ToAll, Block: blockA, Next: 1},
		ElementRow{Position: 1, Heading: primitives.ToAll, Block: blockB, Next: 2},
		ElementRow{Position: 2, Heading: primitives.ToAll, Block: blockC, Next: 0},
	)
}

func branchRows() []ElementRow {
	return rows(
		ElementRow{Position: 0, Heading: 5, Block: blockA, Next: 1},
		ElementRow{Position: 0, Heading: 6, Block: blockB, Next: 2},
		ElementRow{Position: 1, Heading: primitives.ToAll, Block: blockC, Next: 2},
		ElementRow{Position: 2, Heading: primitives.ToAll, Block: blockD, Next: 0},
	)
}

func build(t *testing.T, r []ElementRow) []State {
	t.Helper()
	n, err := CountDistinctPositions(r)
	if err != nil {
		t.Fatalf("CountDistinctPositions: %v", err)
	}
	states, err := BuildStates(r, n)
	if err != nil {
		t.Fatalf("BuildStates: %v", err)
	}
	return states
}

func TestCountDistinctPositions(t *testing.T) {
	tests := []struct {
		name string
		rows []ElementRow
		want int
	}{
		{"end marker only", rows(), 0},
		{"loop", loopRows(), 3},
		{"branch", branchRows(), 3},
		{
			"repeated position counted per change",
			rows(
				ElementRow{Position: 0, Next: 1},
				ElementRow{Position: 1, Next: 0},
				ElementRow{Position: 0, Next: 1},
			),
			3,
		},
		{
			"rows after the end marker are ignored",
			append(loopRows(), ElementRow{Position: 3}, ElementRow{Position: 4}),
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountDistinctPositions(tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CountDistinctPositions() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountDistinctPositionsUnterminated(t *testing.T) {
	long := make([]ElementRow, MaxElements+10)
	for i := range long {
		long[i] = ElementRow{Position: Position(i % 200)}
	}
	long[MaxElements] = primitives.EndMarker

	tests := []struct {
		name string
		rows []ElementRow
	}{
		{"nil", nil},
		{"no marker", loopRows()[:3]},
		{"marker beyond MaxElements rows", long},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CountDistinctPositions(tt.rows); !errors.Is(err, ErrUnterminatedTable) {
				t.Errorf("got %v, want ErrUnterminatedTable", err)
			}
		})
	}
}

func TestBuildLoop(t *testing.T) {
	states := build(t, loopRows())
	if len(states) != 3 {
		t.Fatalf("got %d states, want 3", len(states))
	}
	for i, s := range states {
		if int(s.Position) != i {
			t.Errorf("state %d at position %d", i, s.Position)
		}
		if len(s.Alternatives()) != 0 {
			t.Errorf("state %d has %d alternatives, want none", i, len(s.Alternatives()))
		}
	}
	if got := ValidateStates(states, nil); got != MaxElements {
		t.Errorf("ValidateStates() = %d, want %d", got, MaxElements)
	}
}

func TestBuildBranch(t *testing.T) {
	states := build(t, branchRows())
	if len(states) != 3 {
		t.Fatalf("got %d states, want 3", len(states))
	}

	first := states[0].First()
	if first.Heading != 5 || first.Block != blockA || first.Next != 1 {
		t.Errorf("state 0 first = %+v", first)
	}
	alt := states[0].Alternatives()
	if len(alt) != 1 {
		t.Fatalf("state 0 has %d alternatives, want 1", len(alt))
	}
	if alt[0].Heading != 6 || alt[0].Next != 2 {
		t.Errorf("state 0 alternative = %+v, want heading 6 to 2", alt[0])
	}
	if got := ValidateStates(states, nil); got != MaxElements {
		t.Errorf("ValidateStates() = %d, want %d", got, MaxElements)
	}
}

func TestBuildConsumesEveryRow(t *testing.T) {
	for _, r := range [][]ElementRow{loopRows(), branchRows()} {
		states := build(t, r)
		n := 0
		for i, s := range states {
			n += len(s.Choices)
			for _, c := range s.Choices {
				if c.Position != states[i].Position {
					t.Errorf("state %d holds a transition of position %d", i, c.Position)
				}
			}
		}
		if n != len(r)-1 {
			t.Errorf("%d transitions for %d rows", n, len(r)-1)
		}
	}
}

func TestBuildKinds(t *testing.T) {
	states := build(t, rows(
		ElementRow{Position: 0, Heading: primitives.TermGroup, Block: blockA},
		ElementRow{Position: 0, Heading: primitives.Term1, Next: 1},
		ElementRow{Position: 0, Heading: primitives.TermGroup, Next: 1},
		ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
		ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
	))

	want := []TransitionKind{KindMultipleChoices, KindFixed, KindTerminalGroup, KindFixed}
	for i, c := range states[0].Choices {
		if c.Kind != want[i] {
			t.Errorf("choice %d kind %s, want %s", i, c.Kind, want[i])
		}
	}
	if g, ok := states[0].Choices[2].Group(); !ok || g != 1 {
		t.Errorf("Group() = %d, %v; want 1, true", g, ok)
	}
	if _, ok := states[0].Choices[0].Group(); ok {
		t.Error("multiple choices head reports a group")
	}
}

func TestBuildStatesErrors(t *testing.T) {
	if _, err := BuildStates(loopRows(), MaxElements+1); !errors.Is(err, ErrTooManyElements) {
		t.Errorf("got %v, want ErrTooManyElements", err)
	}
	if _, err := BuildStates(loopRows(), 4); err == nil {
		t.Error("expected error building past the end marker")
	}
	if _, err := BuildStates(loopRows()[:2], 3); err == nil {
		t.Error("expected error building past the end of the table")
	}
}

func TestNewAutomatonErrors(t *testing.T) {
	base := func() *primitives.LayoutBuilder {
		return primitives.NewLayoutBuilder("test").
			At(0).Go(primitives.ToAll, blockA, 1).
			At(1).Go(primitives.ToAll, blockB, 0)
	}

	tests := []struct {
		name   string
		layout Layout
		target error
	}{
		{
			name:   "too many terminals",
			layout: base().Terminals(4, 5).Build(),
			target: ErrTooManyTerminals,
		},
		{
			name:   "too many helipads",
			layout: base().Helipads(2, 2).Build(),
			target: ErrTooManyHelipads,
		},
		{
			name:   "empty terminal group",
			layout: base().Terminals(2, 0).Build(),
			target: ErrEmptyGroup,
		},
		{
			name:   "entry point out of bounds",
			layout: base().Entries(0, 1, 2, 0).Build(),
			target: ErrEntryPointOutOfBounds,
		},
		{
			name: "unterminated",
			layout: func() Layout {
				l := base().Build()
				l.Rows = l.Rows[:len(l.Rows)-1]
				return l
			}(),
			target: ErrUnterminatedTable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAutomaton(tt.layout)
			if !errors.Is(err, tt.target) {
				t.Errorf("got %v, want %v", err, tt.target)
			}
		})
	}
}

func TestNewAutomatonValidationError(t *testing.T) {
	l := primitives.NewLayoutBuilder("broken").
		At(0).Go(primitives.ToAll, blockA, 1).
		At(1).Go(primitives.ToAll, blockB, 7).
		Build()

	_, err := NewAutomaton(l)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Airport != "broken" || verr.Index != 1 {
		t.Errorf("got %+v, want broken/1", verr)
	}
}

func TestNewAutomatonCopiesLayout(t *testing.T) {
	l := primitives.NewLayoutBuilder("copy").
		At(0).Go(primitives.ToAll, blockA, 1).
		At(1).Go(primitives.ToAll, blockB, 0).
		Terminals(2).
		MovingData(primitives.MovingData{X: 1}, primitives.MovingData{X: 2}).
		Build()

	a, err := NewAutomaton(l)
	if err != nil {
		t.Fatal(err)
	}
	l.Terminals[1] = 7
	l.MovingData[0].X = 99
	l.Rows[0].Next = 0

	if a.NumTerminals() != 2 || a.Terminals()[1] != 2 {
		t.Errorf("terminals changed with the layout: %v", a.Terminals())
	}
	if md, _ := a.MovingData(0); md.X != 1 {
		t.Errorf("moving data changed with the layout: %+v", md)
	}
	if a.State(0).First().Next != 1 {
		t.Error("states changed with the layout")
	}
}
