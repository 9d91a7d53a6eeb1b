// Package kv provides the string-keyed storage medium that workout data is
// written into. Every backend replaces a key's value in a single step, so a
// reader never sees a partial write.
package kv

import (
	"context"
	"fmt"
)

// Store is an opaque string-keyed get/set capability.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Close releases the underlying resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Dir           string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open returns the backend named by opts.Backend. An empty name means file.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		s   Store
		err error
	)
	switch opts.Backend {
	case "", BackendFile:
		s, err = NewFileStore(opts.Dir)
	case BackendSQLite:
		s, err = OpenSQLite(ctx, opts.SQLitePath)
	case BackendRedis:
		s, err = DialRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix)
	case BackendMemory:
		s = NewMemoryStore()
	default:
		err = fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
