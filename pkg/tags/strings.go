package tags

import (
	"context"
	"strings"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
)

// Uppercase folds its first parameter to upper case.
type Uppercase struct{}

// Render implements ports.Tag.
func (Uppercase) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	return fold(call, strings.ToUpper)
}

// Lowercase folds its first parameter to lower case.
type Lowercase struct{}

// Render implements ports.Tag.
func (Lowercase) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	return fold(call, strings.ToLower)
}

func fold(call *domain.ParsedTag, fn func(string) string) *future.Result[*domain.Value] {
	if len(call.Parameters) != 1 {
		return syntaxErr("case tags expect exactly one parameter", call.Source)
	}
	s, ok := call.Parameters[0].StringValue()
	if !ok {
		return syntaxErr("case tags expect a text-representable parameter", call.Source)
	}
	return value(domain.String(fn(s)))
}
