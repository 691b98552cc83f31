package tags

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
)

// If renders its body when its first parameter is truthy. When the
// condition fails it declines, so a chained else (or else-if, an if tag
// chained behind an else) takes over.
type If struct{}

// Render implements ports.Tag.
func (If) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	if len(call.Parameters) != 1 {
		return syntaxErr("if expects exactly one parameter", call.Source)
	}
	if !truthy(call.Parameters[0]) {
		return decline()
	}
	return renderBodyValue(ctx, call, data, body)
}

// Else unconditionally renders its body. It is meant to terminate an if
// chain and is a plain tag otherwise.
type Else struct{}

// Render implements ports.Tag.
func (Else) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	return renderBodyValue(ctx, call, data, body)
}
