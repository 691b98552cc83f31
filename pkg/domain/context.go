package domain

// Context is the mutable value tree a render proceeds against. A single
// instance is shared by reference across a render and every nested
// serialization it spawns, so a tag mutation (a loop variable, for
// example) is visible to its own body and to siblings resolved after it.
//
// The context carries no locking. The engine resolves siblings on one
// goroutine and relies on single-writer discipline per logical render;
// tag implementations that complete asynchronously must not mutate paths
// another in-flight resolution reads.
type Context struct {
	root map[string]Value
}

// NewContext creates a rendering context over the given root dictionary.
func NewContext(root map[string]Value) *Context {
	if root == nil {
		root = make(map[string]Value)
	}
	return &Context{root: root}
}

// ContextFromAny lifts a plain Go map (decoded JSON/YAML) into a context.
func ContextFromAny(data map[string]any) *Context {
	return NewContext(fromAnyMap(data))
}

// Fetch walks the context from its root, descending into dictionary
// entries per path segment. It reports ok=false as soon as a segment is
// missing or the current value is not a dictionary; absence at any step
// is total absence. Fetch never mutates.
func (c *Context) Fetch(path []string) (Value, bool) {
	if len(path) == 0 {
		return Null(), false
	}
	current := Dict(c.root)
	for _, segment := range path {
		dict, ok := current.AsDict()
		if !ok {
			return Null(), false
		}
		next, ok := dict[segment]
		if !ok {
			return Null(), false
		}
		current = next
	}
	return current, true
}

// Set writes a top-level key. Mutations are never rolled back, even when
// the enclosing render later fails.
func (c *Context) Set(key string, v Value) {
	c.root[key] = v
}

// Delete removes a top-level key.
func (c *Context) Delete(key string) {
	delete(c.root, key)
}

// Root returns the context as a dictionary value. The underlying map is
// shared with the context, not copied.
func (c *Context) Root() Value {
	return Dict(c.root)
}
