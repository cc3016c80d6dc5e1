package testutil

import (
	"testing"

	"github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/primitives"
)

func loop() primitives.Layout {
	return primitives.NewLayoutBuilder("loop").
		At(0).Go(primitives.ToAll, primitives.Term1Block, 1).
		At(1).Go(primitives.ToAll, primitives.Term2Block, 2).
		At(2).Go(primitives.ToAll, primitives.Term3Block, 0).
		Build()
}

func TestAutomatonErrorsClean(t *testing.T) {
	l := loop()
	a, err := airportfta.NewAutomaton(l)
	if err != nil {
		t.Fatal(err)
	}
	if errs := AutomatonErrors(a, l); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestAutomatonErrorsRowMismatch(t *testing.T) {
	l := loop()
	a, err := airportfta.NewAutomaton(l)
	if err != nil {
		t.Fatal(err)
	}

	// Check against a layout with an extra row the automaton never saw.
	other := primitives.NewLayoutBuilder("loop").
		At(0).Go(primitives.Takeoff, primitives.Term1Block, 1).Then(1).
		At(1).Go(primitives.ToAll, primitives.Term2Block, 2).
		At(2).Go(primitives.ToAll, primitives.Term3Block, 0).
		Build()
	if errs := AutomatonErrors(a, other); len(errs) != 1 {
		t.Errorf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestPositionChanges(t *testing.T) {
	tests := []struct {
		name string
		rows []primitives.ElementRow
		want int
	}{
		{"nil", nil, 0},
		{"marker only", []primitives.ElementRow{primitives.EndMarker}, 0},
		{"loop", loop().Rows, 3},
		{
			"rows after marker ignored",
			[]primitives.ElementRow{{Position: 0}, primitives.EndMarker, {Position: 7}},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := positionChanges(tt.rows); got != tt.want {
				t.Errorf("positionChanges() = %d, want %d", got, tt.want)
			}
		})
	}
}
