// Package statusmap models a finite set of named statuses connected by
// declared transitions, and classifies any proposed status change as allowed
// or rejected for a specific reason. It answers one question for the host
// application: "is this transition currently legal, and if not, why not". It
// never executes transitions or mutates caller state.
//
// A requested move that is not a declared edge is not one generic failure.
// The classifier distinguishes a skipped-ahead move (ErrFutureTransition),
// a regression (ErrPastTransition), a cyclic both-ways relation
// (ErrAmbiguousTransition) and two completely unrelated statuses
// (ErrTransitionNotFound), so callers can present differentiated guidance
// such as "you skipped a step" versus "you cannot go back".
//
// # Architecture
//
// A StatusMap is built once from a specification and is immutable afterwards:
// adjacency maps for both edge directions, a direct-edge index, and a per-edge
// validation-hook index are all precomputed at construction, so queries read
// without locks. Ancestor and descendant sets are derived lazily by
// breadth-first traversal and memoized in a bounded LRU ReachabilityCache
// keyed by (map identity, status, direction). Each map owns a private cache
// by default; WithCache shares one cache across maps, with the identity key
// keeping their entries apart.
//
// # Usage
//
//	m := statusmap.MustNew(
//	    statusmap.WithTargets("pending", "processing", "cancelled"),
//	    statusmap.WithAnnotatedTargets("processing",
//	        statusmap.To("shipped", statusmap.WithValidations("check_inventory")),
//	    ),
//	    statusmap.WithTargets("shipped", "delivered"),
//	    statusmap.WithTargets("delivered"),
//	    statusmap.WithTargets("cancelled"),
//	)
//
//	if err := m.ValidateTransition("pending", "processing"); err != nil {
//	    // handle rejection
//	}
//
//	hooks := m.Validations("processing", "shipped") // ["check_inventory"]
//
// Specifications can also come from a plain next-state table (FromTable) or a
// YAML document (NewFromYAML).
//
// # Error Handling
//
// Every rejection is a typed error with helper predicates
// (IsFutureTransitionError, IsStatusNotFoundError, ...) and errors.As
// support. The package never logs and never downgrades a failure; a nil
// return from ValidateTransition is the only success signal. Malformed
// specifications fail construction with ErrInvalidSpecification.
//
// # Concurrency
//
// The map itself is immutable and safe for unsynchronized concurrent reads.
// The reachability cache is the only shared mutable state; it locks its own
// structure, and a first-time computation races at worst redundantly: the
// graph is immutable, so concurrent computations of the same set are
// identical and any result may be cached.
package statusmap
