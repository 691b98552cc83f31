package tags

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
)

// Set writes a top-level context key and produces no output. The write is
// visible to the tag's own body (it has none), to siblings resolved after
// it, and to the caller once the render returns; it is never rolled back,
// even when the render later fails.
type Set struct{}

// Render implements ports.Tag.
func (Set) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	if len(call.Parameters) != 2 {
		return syntaxErr("set expects a key and a value", call.Source)
	}
	key, ok := call.Parameters[0].StringValue()
	if !ok || key == "" {
		return syntaxErr("set key must be a non-empty string", call.Source)
	}
	data.Set(key, call.Parameters[1])

	// Void tag: resolves to nothing and contributes an empty chunk.
	return decline()
}
