package statusmap

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Option configures a status map during construction.
type Option func(*builder) error

type builder struct {
	entries  []specEntry
	capacity int
	cache    *ReachabilityCache
}

// New builds an immutable status map from the given specification options.
// Declaration order of the options defines the iteration order of statuses.
func New(opts ...Option) (*StatusMap, error) {
	b := &builder{capacity: DefaultCacheCapacity}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b.build()
}

// MustNew builds a status map and panics if the specification is invalid.
// Intended for package-level transition tables known correct at compile time.
func MustNew(opts ...Option) *StatusMap {
	m, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create status map: %v", err))
	}
	return m
}

// WithTargets declares a source status and its reachable targets without edge
// metadata. Call with no targets to declare a terminal status that has no
// outgoing transitions.
func WithTargets(from Status, targets ...Status) Option {
	return func(b *builder) error {
		b.entries = append(b.entries, specEntry{
			from:  from,
			plain: slices.Clone(targets),
		})
		return nil
	}
}

// WithAnnotatedTargets declares a source status whose edges carry metadata.
// Targets are built with To.
func WithAnnotatedTargets(from Status, targets ...AnnotatedTarget) Option {
	return func(b *builder) error {
		b.entries = append(b.entries, specEntry{
			from:      from,
			annotated: slices.Clone(targets),
		})
		return nil
	}
}

// FromTable declares transitions from a plain next-state table. Map iteration
// order is not deterministic in Go, so source statuses are sorted before
// registration; use WithTargets options when declaration order matters.
func FromTable(table map[Status][]Status) Option {
	return func(b *builder) error {
		froms := make([]Status, 0, len(table))
		for from := range table {
			froms = append(froms, from)
		}
		slices.Sort(froms)

		for _, from := range froms {
			b.entries = append(b.entries, specEntry{
				from:  from,
				plain: slices.Clone(table[from]),
			})
		}
		return nil
	}
}

// WithCacheCapacity sizes the map's private reachability cache. Ignored when
// WithCache supplies an external cache.
func WithCacheCapacity(capacity int) Option {
	return func(b *builder) error {
		if capacity <= 0 {
			return NewErrInvalidSpecification("cache capacity must be positive")
		}
		b.capacity = capacity
		return nil
	}
}

// WithCache attaches an external reachability cache, allowing several maps to
// share one bounded cache. Entries are keyed by map identity, so shared use
// never mixes results between maps.
func WithCache(cache *ReachabilityCache) Option {
	return func(b *builder) error {
		if cache == nil {
			return NewErrInvalidSpecification("cache must not be nil")
		}
		b.cache = cache
		return nil
	}
}

// WithConfig applies environment-derived configuration, see LoadConfig.
func WithConfig(cfg Config) Option {
	return WithCacheCapacity(cfg.CacheCapacity)
}

func (b *builder) build() (*StatusMap, error) {
	m := &StatusMap{
		id:    uuid.New(),
		succ:  make(map[Status][]Status, len(b.entries)),
		pred:  make(map[Status][]Status, len(b.entries)),
		edges: make(map[edgeKey]struct{}),
		attrs: make(map[edgeKey]EdgeAttributes),
		cache: b.cache,
	}
	if m.cache == nil {
		m.cache = NewReachabilityCache(b.capacity)
	}

	// Source statuses become nodes first, even with no outgoing edges, so
	// isolated and terminal statuses exist in the map.
	for _, e := range b.entries {
		if e.from == "" {
			return nil, NewErrInvalidSpecification("status name must not be empty")
		}
		if _, ok := m.succ[e.from]; ok {
			return nil, NewErrInvalidSpecification(fmt.Sprintf("status '%s' declared more than once", e.from))
		}
		m.succ[e.from] = nil
		m.statuses = append(m.statuses, e.from)
	}

	for _, e := range b.entries {
		for _, target := range e.plain {
			if err := m.addEdge(e.from, target); err != nil {
				return nil, err
			}
		}
		for _, at := range e.annotated {
			if err := m.addEdge(e.from, at.Target); err != nil {
				return nil, err
			}
			m.attrs[edgeKey{from: e.from, to: at.Target}] = at.Attrs
		}
	}

	return m, nil
}

// addEdge records a directed edge, auto-registering targets that were not
// declared as their own entry.
func (m *StatusMap) addEdge(from, to Status) error {
	if to == "" {
		return NewErrInvalidSpecification(fmt.Sprintf("status '%s' declares an empty target", from))
	}
	key := edgeKey{from: from, to: to}
	if _, ok := m.edges[key]; ok {
		return NewErrInvalidSpecification(fmt.Sprintf("transition from '%s' to '%s' declared more than once", from, to))
	}

	if _, ok := m.succ[to]; !ok {
		m.succ[to] = nil
		m.statuses = append(m.statuses, to)
	}

	m.edges[key] = struct{}{}
	m.succ[from] = append(m.succ[from], to)
	m.pred[to] = append(m.pred[to], from)
	return nil
}
