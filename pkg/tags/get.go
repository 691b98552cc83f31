package tags

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
)

// Get echoes its first parameter. It is the interpolation tag: a template
// writes a context value by wrapping its identifier in a get invocation.
type Get struct{}

// Render implements ports.Tag.
func (Get) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	if len(call.Parameters) != 1 {
		return syntaxErr("get expects exactly one parameter", call.Source)
	}
	return value(call.Parameters[0])
}
