package production

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/comalice/airportfta/internal/layouts"
	"github.com/comalice/airportfta/internal/primitives"
)

func TestExportAll(t *testing.T) {
	s, err := NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ls := builtinLayouts(t)
	ch := make(chan ExportEvent, len(ls))
	ctx := context.Background()

	if err := ExportAll(ctx, s, ls, 3, NewChannelPublisher(ch)); err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}
	close(ch)

	var got []string
	for ev := range ch {
		if ev.Err != nil {
			t.Errorf("%s: %v", ev.Layout, ev.Err)
		}
		got = append(got, ev.Layout)
	}
	slices.Sort(got)
	if !slices.Equal(got, layouts.Names()) {
		t.Errorf("events for %v", got)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != len(ls) {
		t.Errorf("%d files written, want %d", len(names), len(ls))
	}
}

type failingStore struct {
	LayoutStore
}

var errStoreFull = errors.New("store full")

func (failingStore) Save(ctx context.Context, l primitives.Layout) error {
	return errStoreFull
}

func TestExportAll_Failure(t *testing.T) {
	err := ExportAll(context.Background(), failingStore{}, builtinLayouts(t), 0, nil)
	if !errors.Is(err, errStoreFull) {
		t.Errorf("got %v, want errStoreFull", err)
	}
}
