package publishers

import (
	"context"
	"errors"
	"fmt"
)

// Fanout delivers each analysis event to every enabled sink.
type Fanout struct {
	publishers []Publisher
}

// NewFanout wraps the built sinks; nil entries are skipped.
func NewFanout(pubs []Publisher) *Fanout {
	cp := make([]Publisher, 0, len(pubs))
	for _, p := range pubs {
		if p == nil {
			continue
		}
		cp = append(cp, p)
	}
	return &Fanout{publishers: cp}
}

// Publish hands the analysis event to each sink in order. A failing sink does
// not stop the others; the count is the number of sinks that accepted it.
func (f *Fanout) Publish(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.publishers) == 0 {
		return 0, nil
	}

	var errs []error
	successful := 0
	for _, p := range f.publishers {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s publisher[%s] event %s: %w", p.Type(), p.ID(), evt.ID, err))
			continue
		}
		successful++
	}
	return successful, errors.Join(errs...)
}

// Size reports how many sinks are wired; zero means publishing is disabled.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.publishers)
}

// Close releases publishers holding connections.
func (f *Fanout) Close() error {
	if f == nil {
		return nil
	}
	var errs []error
	for _, p := range f.publishers {
		if c, ok := p.(Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s publisher[%s]: %w", p.Type(), p.ID(), err))
			}
		}
	}
	return errors.Join(errs...)
}
