// Package storage caches username to UID resolutions for the host program.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a cached name lookup.
type Entry struct {
	Name   string `json:"name"`
	UID    string `json:"uid"`
	PID    string `json:"pid,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Store caches resolved player UIDs keyed by platform and name.
type Store interface {
	Close() error
	LookupUID(platform, name string) (Entry, bool, error)
	PutUID(platform string, e Entry) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 24 * time.Hour
	defaultCleanupInterval = time.Hour
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

// cacheKey is case-insensitive on the name; display names are unique regardless of case.
func cacheKey(platform, name string) []byte {
	return []byte(strings.ToUpper(strings.TrimSpace(platform)) + ":" + strings.ToLower(strings.TrimSpace(name)))
}

type noopStore struct{}

func (noopStore) Close() error                                  { return nil }
func (noopStore) LookupUID(string, string) (Entry, bool, error) { return Entry{}, false, nil }
func (noopStore) PutUID(string, Entry) error                    { return nil }
