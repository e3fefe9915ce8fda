// Copyright 2020 Aleksandr Demakin. All rights reserved.

package env

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Cache returns a shared Environment per configuration.
type Cache interface {
	// Get returns the Environment for (bits, maxEs).
	// Equal keys always yield the same *Environment.
	Get(bits, maxEs uint8) (*Environment, error)
	// Len returns the number of cached environments.
	Len() int
}

// Stats holds Registry counters.
type Stats struct {
	Size   int64
	Hits   int64
	Misses int64
}

// Registry is a Cache, that never evicts.
// Concurrent first lookups of a key may build several environments,
// but only one of them is stored and returned to all callers.
type Registry struct {
	envs   sync.Map // Key -> *Environment
	size   atomic.Int64
	hits   atomic.Int64
	misses atomic.Int64
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(r *Registry)

// WithLogger sets a logger for a Registry. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get implements Cache.
func (r *Registry) Get(bits, maxEs uint8) (*Environment, error) {
	key := Key{Bits: bits, MaxEs: maxEs}
	if e, found := r.envs.Load(key); found {
		r.hits.Inc()
		return e.(*Environment), nil
	}
	r.misses.Inc()
	candidate, err := New(bits, maxEs)
	if err != nil {
		r.logger.Debug("environment rejected", zap.Stringer("key", key), zap.Error(err))
		return nil, err
	}
	e, loaded := r.envs.LoadOrStore(key, candidate)
	if loaded {
		r.logger.Debug("environment built concurrently, discarding", zap.Stringer("key", key))
	} else {
		size := r.size.Inc()
		r.logger.Debug("environment built", zap.Stringer("key", key), zap.Int64("size", size))
	}
	return e.(*Environment), nil
}

// Len implements Cache.
func (r *Registry) Len() int {
	return int(r.size.Load())
}

// Stats returns the current counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Size:   r.size.Load(),
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide Registry. It is created on first use.
func Default() Cache {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Get returns an Environment from the Default cache.
func Get(bits, maxEs uint8) (*Environment, error) {
	return Default().Get(bits, maxEs)
}
