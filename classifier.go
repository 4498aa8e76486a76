package statusmap

// ValidateTransition classifies the requested move from -> to against the
// declared transition graph. It returns nil when the move is legal: the two
// statuses are equal, or a direct edge is declared. Otherwise it returns one
// of the typed errors describing why the move is rejected:
//
//   - ErrStatusNotFound: from (checked first) or to is not in the map
//   - ErrAmbiguousTransition: to is reachable both forward and backward
//   - ErrFutureTransition: to is only reachable through intermediate steps
//   - ErrPastTransition: to is only reachable by going backward
//   - ErrTransitionNotFound: no path connects the statuses in either direction
//
// The call is read-only apart from populating the reachability cache and is
// safe for concurrent use.
func (m *StatusMap) ValidateTransition(from, to Status) error {
	if !m.Has(from) {
		return NewErrStatusNotFound(from, "from_status")
	}
	if !m.Has(to) {
		return NewErrStatusNotFound(to, "to_status")
	}

	// Self moves and declared edges short-circuit before any reachability
	// computation.
	if from == to || m.hasEdge(from, to) {
		return nil
	}

	isAncestor := m.Ancestors(from).Contains(to)
	isDescendant := m.Descendants(from).Contains(to)

	switch {
	case isAncestor && isDescendant:
		return NewErrAmbiguousTransition(from, to)
	case isDescendant:
		return NewErrFutureTransition(from, to)
	case isAncestor:
		return NewErrPastTransition(from, to)
	default:
		return NewErrTransitionNotFound(from, to)
	}
}

// CanTransition reports whether ValidateTransition would accept the move.
func (m *StatusMap) CanTransition(from, to Status) bool {
	return m.ValidateTransition(from, to) == nil
}

// Ancestors returns the set of statuses from which the given status is
// reachable via one or more forward edges. With cycles a status may appear in
// its own ancestor set. Returns an empty set for statuses not in the map.
func (m *StatusMap) Ancestors(status Status) StatusSet {
	return m.cache.getOrCompute(reachKey{mapID: m.id, status: status, dir: dirAncestors}, func() StatusSet {
		return m.traverse(status, m.pred)
	})
}

// Descendants returns the set of statuses reachable from the given status via
// one or more forward edges. Returns an empty set for statuses not in the map.
func (m *StatusMap) Descendants(status Status) StatusSet {
	return m.cache.getOrCompute(reachKey{mapID: m.id, status: status, dir: dirDescendants}, func() StatusSet {
		return m.traverse(status, m.succ)
	})
}

// traverse collects every status reachable from start through the given
// adjacency, breadth-first. The start status itself is included only when a
// cycle leads back to it. Visited marking keeps cyclic graphs terminating.
func (m *StatusMap) traverse(start Status, adjacency map[Status][]Status) StatusSet {
	seen := make(StatusSet)
	queue := append([]Status(nil), adjacency[start]...)

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		queue = append(queue, adjacency[s]...)
	}

	return seen
}
