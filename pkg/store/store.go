// Package store is a keyed cache for the results of API queries.
//
// Each key holds the last successful result of a query together with its
// loading and error state. Subscribers are notified on every change.
// Mutations keep the cache consistent with the server either by invalidating
// a key, which refetches it when it is in use, or by patching the cached data
// with the authoritative response of the mutation.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	ErrClosed    = errors.New("the store is closed")
	ErrNoFetcher = errors.New("no fetcher is registered for the key")
)

// Key identifies a cached query by its resource and parameters.
type Key struct {
	Resource string
	Param    string
}

// NewKey returns the key for a resource and its parameters.
func NewKey(resource string, params ...string) Key {
	return Key{
		Resource: resource,
		Param:    strings.Join(params, "/"),
	}
}

func (k Key) String() string {
	if k.Param == "" {
		return k.Resource
	}

	return k.Resource + "/" + k.Param
}

// Fetcher loads the data for a key.
type Fetcher func(ctx context.Context) (any, error)

// State is a snapshot of a cached query.
type State struct {
	Data      any       // Last successfully fetched or patched data
	Err       error     // Error of the last fetch, nil if it succeeded
	HasData   bool      // Data has been set at least once
	IsLoading bool      // A fetch is in flight
	IsStale   bool      // The data was invalidated and needs to be refetched
	UpdatedAt time.Time // Time Data was last set
}

// IsError reports whether the last fetch failed.
func (s State) IsError() bool {
	return s.Err != nil
}

type entry struct {
	state       State
	fetcher     Fetcher
	subscribers map[uint64]func(State)

	// generation is increased by every patch and invalidation. Fetch results
	// are only written when the generation did not change while the fetch
	// was in flight.
	generation uint64
}

// Store is the query cache. The zero value is not usable, use New.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	nextSub uint64
	closed  bool

	group  singleflight.Group
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger    zerolog.Logger
	metrics   *metrics
	staleTime time.Duration
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. It defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithRegisterer registers the store metrics with a Prometheus registerer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(s *Store) {
		s.metrics = newMetrics(r)
	}
}

// WithStaleTime marks data as stale once it is older than d.
// By default, data only becomes stale through invalidation.
func WithStaleTime(d time.Duration) Option {
	return func(s *Store) {
		s.staleTime = d
	}
}

// New creates a store. Call Close to tear it down.
func New(opts ...Option) *Store {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Store{
		entries: make(map[Key]*entry),
		ctx:     ctx,
		cancel:  cancel,
		logger:  log.Logger,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = newMetrics(nil)
	}

	return s
}

// entry returns the entry for key, creating it if needed. s.mu must be held.
func (s *Store) entry(key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{subscribers: make(map[uint64]func(State))}
		s.entries[key] = e
	}

	return e
}

// fresh reports whether the data of e can be returned without fetching. s.mu must be held.
func (s *Store) fresh(e *entry) bool {
	if !e.state.HasData || e.state.IsStale {
		return false
	}

	return s.staleTime <= 0 || s.now().Sub(e.state.UpdatedAt) < s.staleTime
}

// callbacks returns the subscriber callbacks of e. s.mu must be held.
func (e *entry) callbacks() []func(State) {
	fns := make([]func(State), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		fns = append(fns, fn)
	}

	return fns
}

func notify(fns []func(State), st State) {
	for _, fn := range fns {
		fn(st)
	}
}

// Query registers fetcher for key and returns the current state.
//
// If there is no data or the data is stale, a background fetch is started
// unless one is already in flight.
func (s *Store) Query(key Key, fetcher Fetcher) State {
	s.mu.Lock()
	e := s.entry(key)
	e.fetcher = fetcher

	start := !s.closed && !s.fresh(e) && !e.state.IsLoading
	if start {
		e.state.IsLoading = true
	}
	st := e.state
	s.mu.Unlock()

	if !start {
		if st.HasData {
			s.metrics.hits.WithLabelValues(key.Resource).Inc()
		}
		return st
	}

	s.startFetch(key)
	return st
}

// Fetch returns the data for key, fetching it if there is no fresh data.
// Concurrent calls for the same key share one fetch.
func (s *Store) Fetch(ctx context.Context, key Key, fetcher Fetcher) (any, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}

	e := s.entry(key)
	e.fetcher = fetcher
	if s.fresh(e) {
		data := e.state.Data
		s.mu.Unlock()

		s.metrics.hits.WithLabelValues(key.Resource).Inc()
		return data, nil
	}
	s.mu.Unlock()

	for {
		ch := s.group.DoChan(key.String(), func() (any, error) {
			return nil, s.run(key)
		})

		var res singleflight.Result
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res = <-ch:
		}

		if res.Err != nil {
			return nil, res.Err
		}

		s.mu.Lock()
		e, ok := s.entries[key]
		if !ok {
			s.mu.Unlock()
			return nil, ErrNoFetcher
		}

		// Invalidated while the fetch was in flight, fetch again
		if e.state.IsStale && !s.closed {
			s.mu.Unlock()
			continue
		}

		data := e.state.Data
		s.mu.Unlock()
		return data, nil
	}
}

// startFetch fetches key in the background.
func (s *Store) startFetch(key Key) {
	s.mu.Lock()
	if s.closed {
		if e, ok := s.entries[key]; ok {
			e.state.IsLoading = false
		}
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		<-s.group.DoChan(key.String(), func() (any, error) {
			return nil, s.run(key)
		})
	}()
}

// run executes the fetcher registered for key and stores the result.
func (s *Store) run(key Key) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	e, ok := s.entries[key]
	if !ok || e.fetcher == nil {
		s.mu.Unlock()
		return ErrNoFetcher
	}

	s.wg.Add(1)
	defer s.wg.Done()

	fetcher := e.fetcher
	generation := e.generation
	e.state.IsLoading = true
	fns, st := e.callbacks(), e.state
	s.mu.Unlock()

	notify(fns, st)
	s.logger.Debug().Str("key", key.String()).Msg("fetching")

	data, err := fetcher(s.ctx)

	s.mu.Lock()

	// This call must not be joined anymore once IsLoading is cleared below.
	// Otherwise a fetch started from here on would wait for this call and
	// never run, leaving the key loading.
	s.group.Forget(key.String())

	// The entry was removed while the fetch was in flight. Nobody
	// references the result anymore.
	if current, ok := s.entries[key]; !ok || current != e {
		s.mu.Unlock()
		return err
	}

	e.state.IsLoading = false
	switch {
	case err != nil:
		e.state.Err = err
		s.metrics.fetches.WithLabelValues(key.Resource, "error").Inc()
		s.logger.Debug().Str("key", key.String()).Err(err).Msg("fetch failed")

	case e.generation != generation:
		// Patched or invalidated while in flight, the result is outdated
		s.metrics.fetches.WithLabelValues(key.Resource, "discarded").Inc()
		s.logger.Debug().Str("key", key.String()).Msg("discarding outdated fetch result")

	default:
		e.state.Data = data
		e.state.HasData = true
		e.state.Err = nil
		e.state.IsStale = false
		e.state.UpdatedAt = s.now()
		s.metrics.fetches.WithLabelValues(key.Resource, "success").Inc()
	}

	// Refetch data that was invalidated during the fetch if it is in use
	refetch := e.state.IsStale && err == nil && len(e.subscribers) > 0 && !s.closed
	if refetch {
		e.state.IsLoading = true
	}

	fns, st = e.callbacks(), e.state
	s.mu.Unlock()

	notify(fns, st)

	if refetch {
		s.startFetch(key)
	}

	return err
}

// Invalidate marks the data for key as stale.
//
// If the key has subscribers, it is refetched in the background. Otherwise,
// it is fetched the next time it is queried.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok || s.closed {
		s.mu.Unlock()
		return
	}

	e.generation++
	e.state.IsStale = true

	refetch := len(e.subscribers) > 0 && e.fetcher != nil && !e.state.IsLoading
	if refetch {
		e.state.IsLoading = true
	}

	fns, st := e.callbacks(), e.state
	s.mu.Unlock()

	s.metrics.invalidations.WithLabelValues(key.Resource).Inc()
	s.logger.Debug().Str("key", key.String()).Bool("refetch", refetch).Msg("invalidated")

	notify(fns, st)

	if refetch {
		s.startFetch(key)
	}
}

// InvalidateResource invalidates all keys of a resource.
func (s *Store) InvalidateResource(resource string) {
	s.mu.Lock()
	var keys []Key
	for k := range s.entries {
		if k.Resource == resource {
			keys = append(keys, k)
		}
	}
	s.mu.Unlock()

	for _, k := range keys {
		s.Invalidate(k)
	}
}

// Patch replaces the data for key with fn(data) without fetching.
//
// It is a no-op returning false if there is no data for key.
func (s *Store) Patch(key Key, fn func(data any) any) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok || !e.state.HasData || s.closed {
		s.mu.Unlock()
		return false
	}

	e.state.Data = fn(e.state.Data)
	e.state.Err = nil
	e.state.UpdatedAt = s.now()
	e.generation++

	fns, st := e.callbacks(), e.state
	s.mu.Unlock()

	s.metrics.patches.WithLabelValues(key.Resource).Inc()
	notify(fns, st)

	return true
}

// Remove drops the entry for key, including its subscribers. The
// subscribers receive an empty State as their last notification.
func (s *Store) Remove(key Key) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return
	}

	delete(s.entries, key)
	fns := e.callbacks()
	e.subscribers = make(map[uint64]func(State))
	s.mu.Unlock()

	notify(fns, State{})
}

// Subscribe registers fn to be called with the new state on every change of key.
func (s *Store) Subscribe(key Key, fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(key)
	id := s.nextSub
	s.nextSub++
	e.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(e.subscribers, id)
	}
}

// State returns the current state for key.
func (s *Store) State(key Key) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return e.state
	}

	return State{}
}

// Wait blocks until all background fetches are done.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close tears the store down. In-flight fetches are cancelled and waited
// for, subscribers are dropped. Further operations are no-ops.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	for _, e := range s.entries {
		e.subscribers = make(map[uint64]func(State))
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
