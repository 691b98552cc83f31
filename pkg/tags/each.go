package tags

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
)

// Each renders its body once per element of a list parameter, binding the
// element to a loop variable in the shared context. Bodies run strictly
// in element order: each iteration starts only after the previous one
// finished, because they share the loop variable.
//
// Parameters: the list, and optionally the loop variable name (default
// "item"). The loop variable keeps its last value after the loop; the
// context is not restored.
type Each struct{}

// Render implements ports.Tag.
func (Each) Render(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	if len(call.Parameters) < 1 || len(call.Parameters) > 2 {
		return syntaxErr("each expects a list and an optional variable name", call.Source)
	}
	list, ok := call.Parameters[0].AsList()
	if !ok {
		return syntaxErr("each expects its first parameter to be a list", call.Source)
	}

	varName := "item"
	if len(call.Parameters) == 2 {
		name, ok := call.Parameters[1].StringValue()
		if !ok || name == "" {
			return syntaxErr("each variable name must be a non-empty string", call.Source)
		}
		varName = name
	}

	acc := future.Of([]byte(nil))
	for i, element := range list {
		i, element := i, element // per-iteration copies: go directive is below 1.22
		acc = future.Then(acc, func(sofar []byte) *future.Result[[]byte] {
			data.Set(varName, element)
			data.Set(varName+"_index", domain.Int(int64(i)))
			return future.Map(body.Serialize(ctx, call.Body, data), func(chunk []byte) ([]byte, error) {
				return append(sofar, chunk...), nil
			})
		})
	}

	return future.Map(acc, func(raw []byte) (*domain.Value, error) {
		v := domain.String(string(raw))
		return &v, nil
	})
}
