package registry_test

import (
	"context"
	"testing"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/registry"
)

func noop(name string) ports.Tag {
	return ports.TagFunc(func(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
		v := domain.String(name)
		return future.Of(&v)
	})
}

func TestRegistry(t *testing.T) {
	r := registry.New()

	if _, ok := r.Lookup("missing"); ok {
		t.Error("empty registry must miss")
	}

	r.Register("b", noop("b"))
	r.Register("a", noop("a"))
	r.Register("c", noop("c"))

	if _, ok := r.Lookup("a"); !ok {
		t.Error("registered tag must be found")
	}

	names := r.Names()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names() not sorted: got %v", names)
			break
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	r := registry.New()
	r.Register("x", noop("first"))
	r.Register("x", noop("second"))

	tag, ok := r.Lookup("x")
	if !ok {
		t.Fatal("tag must exist")
	}
	v, err := tag.Render(context.Background(), &domain.ParsedTag{Name: "x"}, domain.NewContext(nil), nil).Await(context.Background())
	if err != nil || v == nil {
		t.Fatalf("render failed: %v", err)
	}
	if s, _ := v.StringValue(); s != "second" {
		t.Errorf("re-registration must overwrite, got %q", s)
	}
}
