package statusmap

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

type edgeKey struct {
	from Status
	to   Status
}

// StatusMap is an immutable directed graph of statuses and their declared
// transitions. All lookup structures are precomputed at construction and
// never mutated afterwards, so reads need no synchronization; the only shared
// mutable state is the reachability cache, which synchronizes itself.
type StatusMap struct {
	id       uuid.UUID
	statuses []Status // declaration order, auto-registered targets appended
	succ     map[Status][]Status
	pred     map[Status][]Status
	edges    map[edgeKey]struct{}
	attrs    map[edgeKey]EdgeAttributes
	cache    *ReachabilityCache
}

// Has reports whether the status exists in the map.
func (m *StatusMap) Has(status Status) bool {
	_, ok := m.succ[status]
	return ok
}

// Len returns the number of statuses in the map.
func (m *StatusMap) Len() int {
	return len(m.statuses)
}

// Statuses returns all statuses in declaration order. The returned slice is a
// copy and safe to modify.
func (m *StatusMap) Statuses() []Status {
	out := make([]Status, len(m.statuses))
	copy(out, m.statuses)
	return out
}

// All iterates over all statuses in declaration order.
func (m *StatusMap) All() iter.Seq[Status] {
	return func(yield func(Status) bool) {
		for _, s := range m.statuses {
			if !yield(s) {
				return
			}
		}
	}
}

// Successors returns the direct successors of the given status in declared
// order. Returns ErrStatusNotFound if the status is not in the map.
func (m *StatusMap) Successors(status Status) ([]Status, error) {
	targets, ok := m.succ[status]
	if !ok {
		return nil, NewErrStatusNotFound(status, "status")
	}
	out := make([]Status, len(targets))
	copy(out, targets)
	return out, nil
}

// Validations returns the ordered validation hook identifiers declared for
// the edge from -> to. It returns an empty slice when the edge carries no
// validations, when the edge does not exist, or when either status is absent;
// it never returns an error.
func (m *StatusMap) Validations(from, to Status) []string {
	ids := m.attrs[edgeKey{from: from, to: to}].Validations
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Attributes returns the full attribute bag declared for the edge from -> to
// and whether that edge was declared with annotations.
func (m *StatusMap) Attributes(from, to Status) (EdgeAttributes, bool) {
	attrs, ok := m.attrs[edgeKey{from: from, to: to}]
	return attrs, ok
}

// hasEdge reports whether a direct edge from -> to was declared.
func (m *StatusMap) hasEdge(from, to Status) bool {
	_, ok := m.edges[edgeKey{from: from, to: to}]
	return ok
}

func (m *StatusMap) String() string {
	return fmt.Sprintf("StatusMap(statuses=%v)", m.statuses)
}
