package tags

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/registry"
)

// Default returns a registry preloaded with the built-in catalog.
func Default() *registry.Registry {
	r := registry.New()
	r.Register("get", Get{})
	r.Register("if", If{})
	r.Register("else", Else{})
	r.Register("set", Set{})
	r.Register("each", Each{})
	r.Register("uppercase", Uppercase{})
	r.Register("lowercase", Lowercase{})
	return r
}

// truthy is the condition rule shared by the conditional tags: explicit
// false and null are false, everything else is true.
func truthy(v domain.Value) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return !v.IsNull()
}

// renderBodyValue serializes the tag body against the live context and
// lifts the bytes into a string value.
func renderBodyValue(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
	return future.Map(body.Serialize(ctx, call.Body, data), func(raw []byte) (*domain.Value, error) {
		v := domain.String(string(raw))
		return &v, nil
	})
}

func value(v domain.Value) *future.Result[*domain.Value] {
	return future.Of(&v)
}

func decline() *future.Result[*domain.Value] {
	return future.Of[*domain.Value](nil)
}

func syntaxErr(reason string, source domain.Source) *future.Result[*domain.Value] {
	return future.Err[*domain.Value](&domain.UnexpectedSyntaxError{Reason: reason, Source: source})
}
