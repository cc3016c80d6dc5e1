package production

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/comalice/airportfta/internal/primitives"
)

// Publisher receives one event per exported layout.
type Publisher interface {
	Publish(ctx context.Context, ev ExportEvent) error
}

// ExportAll saves every layout to store, at most limit at a time (no
// limit when limit <= 0). The first failure cancels the remaining saves
// and is returned. pub may be nil.
func ExportAll(ctx context.Context, store LayoutStore, layouts []primitives.Layout, limit int, pub Publisher) error {
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for _, l := range layouts {
		l := l
		eg.Go(func() error {
			err := store.Save(ctx, l)
			if pub != nil {
				if perr := pub.Publish(ctx, ExportEvent{Layout: l.Name, Err: err, Timestamp: time.Now()}); perr != nil && err == nil {
					err = perr
				}
			}
			return err
		})
	}
	return eg.Wait()
}
