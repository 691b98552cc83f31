package domain_test

import (
	"testing"

	"github.com/aretw0/weft/pkg/domain"
)

func TestContext_Fetch(t *testing.T) {
	rc := domain.ContextFromAny(map[string]any{
		"user": map[string]any{
			"name": "Ada",
			"address": map[string]any{
				"city": "London",
			},
		},
		"count": 3,
	})

	t.Run("Nested Hit", func(t *testing.T) {
		v, ok := rc.Fetch([]string{"user", "address", "city"})
		if !ok || !v.Equal(domain.String("London")) {
			t.Errorf("expected London, got %v/%v", v, ok)
		}
	})

	t.Run("Missing Segment", func(t *testing.T) {
		if _, ok := rc.Fetch([]string{"user", "email"}); ok {
			t.Error("missing key must be absent")
		}
	})

	t.Run("Descend Through Scalar", func(t *testing.T) {
		// count is an int; descending into it is total absence, not an error.
		if _, ok := rc.Fetch([]string{"count", "value"}); ok {
			t.Error("descending through a scalar must be absent")
		}
	})

	t.Run("Empty Path", func(t *testing.T) {
		if _, ok := rc.Fetch(nil); ok {
			t.Error("empty path must be absent")
		}
	})
}

func TestContext_SetVisible(t *testing.T) {
	rc := domain.NewContext(nil)
	rc.Set("greeting", domain.String("hi"))

	v, ok := rc.Fetch([]string{"greeting"})
	if !ok || !v.Equal(domain.String("hi")) {
		t.Error("Set value must be fetchable")
	}

	rc.Delete("greeting")
	if _, ok := rc.Fetch([]string{"greeting"}); ok {
		t.Error("deleted key must be absent")
	}
}
