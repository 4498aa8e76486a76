package statusmap

// Status identifies a named state in a domain lifecycle (e.g. "draft",
// "approved"). Statuses are graph nodes and must be unique within a map.
type Status string

// EdgeAttributes carries the metadata declared for a single transition edge.
// The classifier never reads it; it is stored for the host application.
type EdgeAttributes struct {
	// Validations lists validation hook identifiers in declaration order.
	// The host application resolves and runs them before applying a
	// transition; the map only records them.
	Validations []string

	// Meta holds any other declared attribute keys, ignored by the map.
	Meta map[string]any
}

// AnnotatedTarget pairs a reachable target status with its edge attributes.
// Build one with To.
type AnnotatedTarget struct {
	Target Status
	Attrs  EdgeAttributes
}

// TargetOption configures a single annotated target.
type TargetOption func(*EdgeAttributes)

// To builds an annotated target for WithAnnotatedTargets.
func To(target Status, opts ...TargetOption) AnnotatedTarget {
	var attrs EdgeAttributes
	for _, opt := range opts {
		opt(&attrs)
	}
	return AnnotatedTarget{Target: target, Attrs: attrs}
}

// WithValidations appends validation hook identifiers to the edge, preserving
// order across multiple calls.
func WithValidations(ids ...string) TargetOption {
	return func(a *EdgeAttributes) {
		a.Validations = append(a.Validations, ids...)
	}
}

// WithMeta attaches an arbitrary attribute to the edge.
func WithMeta(key string, value any) TargetOption {
	return func(a *EdgeAttributes) {
		if a.Meta == nil {
			a.Meta = make(map[string]any)
		}
		a.Meta[key] = value
	}
}

// specEntry is one source status with its declared outgoing edges, in one of
// the two specification forms. Resolved once at construction; the built map
// never re-inspects which form an entry used.
type specEntry struct {
	from      Status
	plain     []Status
	annotated []AnnotatedTarget
}
