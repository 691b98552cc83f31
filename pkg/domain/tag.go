package domain

// ParsedTag is a fully resolved tag invocation, built per dispatch and
// handed to the tag implementation. Parameters are already evaluated
// (absent parameters become null); Body is left unevaluated so the tag
// decides whether and how often to serialize it. The struct is owned by
// the dispatch that created it and not retained afterward.
type ParsedTag struct {
	Name       string
	Parameters []Value
	Body       []Node
	Source     Source
}

// Parameter returns the i-th resolved parameter, or null when the tag was
// invoked with fewer parameters.
func (t *ParsedTag) Parameter(i int) Value {
	if i < 0 || i >= len(t.Parameters) {
		return Null()
	}
	return t.Parameters[i]
}
