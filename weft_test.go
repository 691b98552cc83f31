package weft_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/pkg/adapters/memory"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/future"
	"github.com/aretw0/weft/pkg/ports"
	"github.com/aretw0/weft/pkg/registry"
)

func TestRender_Basic(t *testing.T) {
	engine := weft.New()

	out, err := engine.Render(context.Background(), []domain.Node{
		domain.Raw("Hello, "),
		domain.Tag("get", domain.Ident("name")),
		domain.Raw("!"),
	}, map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if string(out) != "Hello, World!" {
		t.Errorf("got %q", out)
	}
}

func TestRender_CustomTag(t *testing.T) {
	engine := weft.New()
	engine.Tags().Register("shout", ports.TagFunc(func(ctx context.Context, call *domain.ParsedTag, data *domain.Context, body ports.BodyRenderer) *future.Result[*domain.Value] {
		v := domain.String("HEY")
		return future.Of(&v)
	}))

	out, err := engine.Render(context.Background(), []domain.Node{domain.Tag("shout")}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if string(out) != "HEY" {
		t.Errorf("got %q", out)
	}
}

func TestRender_WithTagsReplacesCatalog(t *testing.T) {
	engine := weft.New(weft.WithTags(registry.New()))

	// The built-in catalog is gone, so even get is unknown.
	_, err := engine.Render(context.Background(), []domain.Node{
		domain.Tag("get", domain.ConstInt(1)),
	}, nil)
	var unknown *domain.UnknownTagError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTagError, got %v", err)
	}
}

func TestRender_Hooks(t *testing.T) {
	var mu sync.Mutex
	var tagEvents []string
	var renderEvents int

	engine := weft.New(weft.WithHooks(domain.LifecycleHooks{
		OnTagRender: func(ctx context.Context, e *domain.TagEvent) {
			mu.Lock()
			tagEvents = append(tagEvents, e.Name)
			mu.Unlock()
		},
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			mu.Lock()
			renderEvents++
			if e.Err != nil {
				t.Errorf("unexpected render error in hook: %v", e.Err)
			}
			mu.Unlock()
		},
	}))

	_, err := engine.Render(context.Background(), []domain.Node{
		domain.Tag("get", domain.ConstInt(1)),
		domain.Tag("get", domain.ConstInt(2)),
	}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(tagEvents) != 2 {
		t.Errorf("expected 2 tag events, got %v", tagEvents)
	}
	if renderEvents != 1 {
		t.Errorf("expected 1 render event, got %d", renderEvents)
	}
}

func TestRenderNamed(t *testing.T) {
	engine := weft.New()
	loader := memory.NewLoader(nil)
	loader.Add("hello", []domain.Node{
		domain.Raw("hi "),
		domain.Tag("get", domain.Ident("name")),
	})

	out, err := engine.RenderNamed(context.Background(), loader, "hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderNamed failed: %v", err)
	}
	if string(out) != "hi Ada" {
		t.Errorf("got %q", out)
	}

	if _, err := engine.RenderNamed(context.Background(), loader, "ghost", nil); !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderContext_SharedByReference(t *testing.T) {
	engine := weft.New()
	data := domain.ContextFromAny(map[string]any{})

	_, err := engine.RenderContext(context.Background(), []domain.Node{
		domain.Tag("set", domain.ConstString(domain.Raw("seen")), domain.ConstBool(true)),
	}, data)
	if err != nil {
		t.Fatalf("RenderContext failed: %v", err)
	}

	if v, ok := data.Fetch([]string{"seen"}); !ok || !v.Equal(domain.Bool(true)) {
		t.Error("mutation must be visible to the caller after the render")
	}
}
