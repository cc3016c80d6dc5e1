package production

import (
	"context"
	"time"
)

// ExportEvent reports the outcome of exporting one layout.
type ExportEvent struct {
	Layout    string
	Err       error
	Timestamp time.Time
}

// ChannelPublisher forwards export events to a Go channel. Publishing
// never blocks; events are dropped when the channel is full.
type ChannelPublisher struct {
	ch chan<- ExportEvent
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- ExportEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, ev ExportEvent) error {
	select {
	case p.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
