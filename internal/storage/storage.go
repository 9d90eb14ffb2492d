package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage keeps the local journal of texts already published downstream.

// Store tracks published text hashes.
type Store interface {
	Close() error
	SeenText(id string) (bool, error)
	MarkText(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 24 * time.Hour
	defaultCleanupInterval = 6 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		store, err := openBolt(path, opts)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.EntryTTL <= 0 {
		opts.EntryTTL = defaultEntryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                  { return nil }
func (noopStore) SeenText(string) (bool, error) { return false, nil }
func (noopStore) MarkText(string) error         { return nil }
