package ports

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
)

// BodyRenderer lets a tag serialize node sequences (typically its own
// body) against the live rendering context. The engine itself implements
// this interface, so tags can recurse without importing the runtime.
type BodyRenderer interface {
	Serialize(ctx context.Context, nodes []domain.Node, data *domain.Context) *future.Result[[]byte]
}

// Tag is a pluggable template construct. Render receives the resolved
// invocation, the shared mutable rendering context, and a BodyRenderer
// for evaluating the body zero or more times.
//
// A completed nil value means the tag declined to produce output; the
// dispatcher then falls through to the invocation's chained tag, if any.
// Render may settle its result from another goroutine, for example after
// I/O; the engine never assumes synchronous completion.
type Tag interface {
	Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body BodyRenderer) *future.Result[*domain.Value]
}

// TagFunc adapts a plain function to the Tag interface.
type TagFunc func(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body BodyRenderer) *future.Result[*domain.Value]

// Render implements Tag.
func (f TagFunc) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body BodyRenderer) *future.Result[*domain.Value] {
	return f(ctx, call, data, body)
}
