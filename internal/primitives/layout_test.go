package primitives

import (
	"strings"
	"testing"
)

func TestLayoutValidate(t *testing.T) {
	valid := func() Layout {
		return NewLayoutBuilder("loop").
			At(0).Go(ToAll, Term1Block, 1).
			At(1).Go(ToAll, Term2Block, 0).
			MovingData(MovingData{X: 1, Y: 1}, MovingData{X: 2, Y: 2}).
			Terminals(2).
			Build()
	}

	tests := []struct {
		name        string
		mutate      func(l *Layout)
		errContains string
	}{
		{name: "minimal valid", mutate: func(l *Layout) {}},
		{
			name:        "missing name",
			mutate:      func(l *Layout) { l.Name = "" },
			errContains: "name",
		},
		{
			name:        "three entry points",
			mutate:      func(l *Layout) { l.EntryPoints = l.EntryPoints[:3] },
			errContains: "entry points",
		},
		{
			name:        "empty table",
			mutate:      func(l *Layout) { l.Rows = nil },
			errContains: "empty",
		},
		{
			name:        "no end marker",
			mutate:      func(l *Layout) { l.Rows = l.Rows[:len(l.Rows)-1] },
			errContains: "end marker",
		},
		{
			name:        "short moving data",
			mutate:      func(l *Layout) { l.MovingData = l.MovingData[:1] },
			errContains: "moving data",
		},
		{
			name:        "terminal groups disagree",
			mutate:      func(l *Layout) { l.Terminals = []int{2, 3} },
			errContains: "terminals",
		},
		{
			name:   "no moving data",
			mutate: func(l *Layout) { l.MovingData = nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(&l)
			err := l.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not mention %q", err, tt.errContains)
			}
		})
	}
}

func TestLayoutNumRows(t *testing.T) {
	l := NewLayoutBuilder("x").At(0).Go(ToAll, 0, 0).At(1).Go(Hangar, 0, 0).Then(0).Build()
	if n := l.NumRows(); n != 3 {
		t.Errorf("NumRows = %d, want 3", n)
	}
	l.Rows = append(l.Rows, ElementRow{Position: 9})
	if n := l.NumRows(); n != 3 {
		t.Errorf("rows after the end marker counted: %d", n)
	}
}

func TestFlagsString(t *testing.T) {
	if got := AllAircraft.String(); got != "airplanes|helicopters" {
		t.Errorf("got %q", got)
	}
	if got := (AllAircraft | ShortStrip).String(); got != "airplanes|helicopters|short-strip" {
		t.Errorf("got %q", got)
	}
	if got := Flags(0).String(); got != "none" {
		t.Errorf("got %q", got)
	}
	if got := DiagSW.String(); got != "SW" {
		t.Errorf("got %q", got)
	}
}
