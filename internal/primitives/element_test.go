package primitives

import (
	"encoding/json"
	"testing"
)

func TestHeadingString(t *testing.T) {
	tests := []struct {
		h    Heading
		want string
	}{
		{ToAll, "to-all"},
		{Hangar, "hangar"},
		{Term6, "term6"},
		{HeliEndLanding, "heli-end-landing"},
		{Helipad3, "helipad3"},
		{TermGroup, "term-group"},
		{Heading(42), "heading(42)"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Heading(%d).String() = %q, want %q", uint8(tt.h), got, tt.want)
		}
	}
}

func TestHeadingClasses(t *testing.T) {
	for _, h := range []Heading{Term1, Term4, Term6, Term7, Term8} {
		if !h.IsTerminal() {
			t.Errorf("%s should be a terminal heading", h)
		}
		if h.IsHelipad() {
			t.Errorf("%s should not be a helipad heading", h)
		}
	}
	for _, h := range []Heading{Helipad1, Helipad2, Helipad3} {
		if !h.IsHelipad() {
			t.Errorf("%s should be a helipad heading", h)
		}
	}
	if Hangar.IsTerminal() || Takeoff.IsTerminal() || TermGroup.IsTerminal() {
		t.Error("non-terminal heading reported as terminal")
	}
}

func TestHeadingNumbers(t *testing.T) {
	tests := []struct {
		h        Heading
		terminal int
		helipad  int
	}{
		{Term1, 1, 0},
		{Term6, 6, 0},
		{Term7, 7, 0},
		{Term8, 8, 0},
		{Helipad1, 0, 1},
		{Helipad3, 0, 3},
		{Hangar, 0, 0},
		{TermGroup, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.h.TerminalNumber(); got != tt.terminal {
			t.Errorf("%s.TerminalNumber() = %d, want %d", tt.h, got, tt.terminal)
		}
		if got := tt.h.HelipadNumber(); got != tt.helipad {
			t.Errorf("%s.HelipadNumber() = %d, want %d", tt.h, got, tt.helipad)
		}
	}
}

func TestBlockOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Block
		want bool
	}{
		{"disjoint", Term1Block, Term2Block, false},
		{"same", RunwayInOutBlock, AirportBusyBlock, true},
		{"subset", Term1Block | TaxiwayBusyBlock, TaxiwayBusyBlock, true},
		{"nothing never overlaps", NothingBlock, NothingBlock, false},
		{"zero", 0, Term1Block, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestBlockString(t *testing.T) {
	if got := Block(0).String(); got != "none" {
		t.Errorf("got %q want none", got)
	}
	if got := (Term1Block | RunwayOutBlock).String(); got != "term1|runway-out" {
		t.Errorf("got %q", got)
	}
	if got := AirportClosedBlock.String(); got != "airport-closed" {
		t.Errorf("got %q", got)
	}
	if got := Block(1 << 40).String(); got != "bit40" {
		t.Errorf("got %q", got)
	}
	if !(Term1Block | Term2Block).Has(Term2Block) {
		t.Error("Has should report contained block")
	}
}

func TestEndMarker(t *testing.T) {
	if !EndMarker.IsEndMarker() {
		t.Fatal("EndMarker is not an end marker")
	}
	if (ElementRow{Position: 3}).IsEndMarker() {
		t.Fatal("ordinary row reported as end marker")
	}
}

func TestPositionsMarshalAsNumbers(t *testing.T) {
	b, err := json.Marshal([]Position{16, 15, 255})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[16,15,255]" {
		t.Errorf("got %s", b)
	}

	var back []Position
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 3 || back[2] != 255 {
		t.Errorf("got %v", back)
	}
}
