package domain

import (
	"context"
	"time"
)

// TagEvent describes one tag render, successful or not.
type TagEvent struct {
	Name     string
	Duration time.Duration
	Err      error
}

// RenderEvent describes one complete serialization.
type RenderEvent struct {
	Nodes    int
	Bytes    int
	Duration time.Duration
	Err      error
}

// LifecycleHooks defines callbacks for engine observability. Nil fields
// are skipped. Hooks run on whichever goroutine settles the underlying
// result, so implementations must be safe for concurrent use.
type LifecycleHooks struct {
	OnTagRender func(context.Context, *TagEvent)
	OnRender    func(context.Context, *RenderEvent)
}
