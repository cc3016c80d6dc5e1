package layouts

import (
	"slices"
	"testing"

	"github.com/comalice/airportfta/internal/primitives"
)

func TestLayoutsValidate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			l, ok := Get(name)
			if !ok {
				t.Fatal("not found")
			}
			if l.Name != name {
				t.Errorf("layout %q registered as %q", l.Name, name)
			}
			if err := l.Validate(); err != nil {
				t.Fatal(err)
			}
			if len(l.MovingData) == 0 {
				t.Error("no moving data")
			}
		})
	}
}

func TestLayoutsDensePositions(t *testing.T) {
	for _, name := range Names() {
		l, _ := Get(name)
		want := primitives.Position(0)
		for i, r := range l.Rows[:l.NumRows()] {
			if r.Position == want {
				continue
			}
			if r.Position != want+1 {
				t.Errorf("%s: row %d jumps from position %d to %d", name, i, want, r.Position)
				break
			}
			want++
		}
	}
}

func TestOilrigSharesHeliportTable(t *testing.T) {
	h, o := heliport(), oilrig()
	if !slices.Equal(h.Rows, o.Rows) {
		t.Error("oil rig rows differ from the heliport")
	}
	if h.DeltaZ == o.DeltaZ {
		t.Error("oil rig has the heliport height")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("spaceport"); ok {
		t.Error("found unknown layout")
	}
	if n := len(Names()); n != 11 {
		t.Errorf("%d layouts, want 11", n)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l, _ := Get("city")
	l.Rows[1].Next = 200
	l.MovingData[0].X = -1
	l.EntryPoints[0] = 99
	l.Terminals[1] = 0

	fresh, _ := Get("city")
	if fresh.Rows[1].Next == 200 || fresh.MovingData[0].X == -1 ||
		fresh.EntryPoints[0] == 99 || fresh.Terminals[1] == 0 {
		t.Error("changing a returned layout changed the built-in one")
	}
	if err := fresh.Validate(); err != nil {
		t.Error(err)
	}
}
