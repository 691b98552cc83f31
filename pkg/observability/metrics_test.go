package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/observability"
)

func TestMetrics_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnRender(ctx, &domain.RenderEvent{Nodes: 2, Bytes: 10, Duration: time.Millisecond})
	hooks.OnRender(ctx, &domain.RenderEvent{Nodes: 1, Duration: time.Millisecond, Err: errors.New("boom")})
	hooks.OnTagRender(ctx, &domain.TagEvent{Name: "get", Duration: time.Microsecond})
	hooks.OnTagRender(ctx, &domain.TagEvent{Name: "get", Duration: time.Microsecond, Err: errors.New("boom")})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	counts := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, label := range metric.GetLabel() {
				key += "|" + label.GetName() + "=" + label.GetValue()
			}
			if metric.GetCounter() != nil {
				counts[key] = metric.GetCounter().GetValue()
			}
		}
	}

	expect := map[string]float64{
		"weft_renders_total|outcome=success":             1,
		"weft_renders_total|outcome=error":               1,
		"weft_tag_renders_total|outcome=success|tag=get": 1,
		"weft_tag_renders_total|outcome=error|tag=get":   1,
	}
	for key, want := range expect {
		if counts[key] != want {
			t.Errorf("%s = %v, want %v (have %v)", key, counts[key], want, counts)
		}
	}
}

func TestMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected MustRegister to panic on duplicate collectors")
		}
	}()
	observability.NewMetrics(reg)
}
