package airportfta_test

import (
	"testing"

	. "github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/primitives"
)

func TestValidateCorruptedPosition(t *testing.T) {
	states := build(t, loopRows())
	states[1].Position = 5
	if got := ValidateStates(states, nil); got != 1 {
		t.Errorf("ValidateStates() = %d, want 1", got)
	}

	// The same defect coming from the table itself.
	r := loopRows()
	r[1].Position = 5
	if got := ValidateStates(build(t, r), nil); got != 1 {
		t.Errorf("ValidateStates() = %d, want 1", got)
	}
}

func TestValidateStates(t *testing.T) {
	tests := []struct {
		name      string
		rows      []ElementRow
		terminals []int
		mutate    func(states []State)
		want      int
	}{
		{
			name: "empty",
			rows: rows(),
			want: MaxElements,
		},
		{
			name: "invalid heading",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: MaxHeadings + 1, Next: 0},
			),
			want: 1,
		},
		{
			name: "multiple choices without alternatives",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.TermGroup, Next: 0},
			),
			want: 0,
		},
		{
			name: "multiple choices with alternatives",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.TermGroup},
				ElementRow{Position: 0, Heading: primitives.Term1, Next: 1},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
			),
			want: MaxElements,
		},
		{
			name: "terminal group within groups",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: primitives.TermGroup},
				ElementRow{Position: 1, Heading: primitives.TermGroup, Next: 0},
				ElementRow{Position: 1, Heading: primitives.TermGroup, Next: 1},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
			),
			terminals: []int{1, 2},
			want:      MaxElements,
		},
		{
			name: "terminal group beyond groups",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: primitives.TermGroup},
				ElementRow{Position: 1, Heading: primitives.TermGroup, Next: 2},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
				ElementRow{Position: 2, Heading: primitives.ToAll, Next: 0},
			),
			terminals: []int{1, 2},
			want:      1,
		},
		{
			name: "terminal group without terminals",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.TermGroup},
				ElementRow{Position: 0, Heading: primitives.TermGroup, Next: 1},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
			),
			want: 0,
		},
		{
			name: "to-all followed by another choice",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 0},
				ElementRow{Position: 1, Heading: primitives.Hangar, Next: 0},
			),
			want: 1,
		},
		{
			name: "next out of bounds",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: primitives.Takeoff, Next: 0},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 2},
			),
			want: 1,
		},
		{
			name: "choice of another position",
			rows: branchRows(),
			mutate: func(states []State) {
				states[0].Choices[1].Position = 1
			},
			want: 0,
		},
		{
			name: "first failure wins",
			rows: rows(
				ElementRow{Position: 0, Heading: primitives.ToAll, Next: 1},
				ElementRow{Position: 1, Heading: primitives.ToAll, Next: 9},
				ElementRow{Position: 2, Heading: primitives.ToAll, Next: 9},
			),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := build(t, tt.rows)
			if tt.mutate != nil {
				tt.mutate(states)
			}
			if got := ValidateStates(states, tt.terminals); got != tt.want {
				t.Errorf("ValidateStates() = %d, want %d", got, tt.want)
			}
		})
	}
}
