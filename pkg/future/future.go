package future

import (
	"context"
	"sync"
	"sync/atomic"
)

// Result is a single-assignment completion cell.
//
// Lifecycle: created empty, settled exactly once via Complete or Fail,
// then discarded. Settling twice is a programming error and panics.
type Result[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	err   error
	subs  []func(T, error)
}

// New creates an empty, unsettled cell.
func New[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// Of returns a cell already completed with v.
func Of[T any](v T) *Result[T] {
	r := New[T]()
	r.Complete(v)
	return r
}

// Err returns a cell already failed with err.
func Err[T any](err error) *Result[T] {
	r := New[T]()
	r.Fail(err)
	return r
}

// Complete fulfils the cell with a value. Panics if already settled.
func (r *Result[T]) Complete(v T) {
	r.settle(v, nil)
}

// Fail settles the cell with a failure. Panics if already settled.
func (r *Result[T]) Fail(err error) {
	var zero T
	r.settle(zero, err)
}

func (r *Result[T]) settle(v T, err error) {
	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		panic("future: result settled twice")
	default:
	}
	r.value, r.err = v, err
	subs := r.subs
	r.subs = nil
	close(r.done)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(v, err)
	}
}

// OnDone attaches a continuation. If the cell is already settled the
// continuation fires immediately on the calling goroutine; otherwise it
// fires on the goroutine that settles the cell. A continuation always
// observes a fully settled cell.
func (r *Result[T]) OnDone(fn func(T, error)) {
	r.mu.Lock()
	select {
	case <-r.done:
		v, err := r.value, r.err
		r.mu.Unlock()
		fn(v, err)
		return
	default:
	}
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

// Await blocks until the cell settles or ctx is cancelled.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// All joins cells into a single cell that completes with their values in
// input order once every member has completed. The first failure observed
// settles the joined cell immediately; later completions are ignored.
func All[T any](cells ...*Result[T]) *Result[[]T] {
	out := New[[]T]()
	if len(cells) == 0 {
		out.Complete(nil)
		return out
	}

	var once sync.Once
	var pending atomic.Int64
	pending.Store(int64(len(cells)))
	values := make([]T, len(cells))

	for i, c := range cells {
		i := i // per-iteration copy: go directive is below 1.22
		c.OnDone(func(v T, err error) {
			if err != nil {
				once.Do(func() { out.Fail(err) })
				return
			}
			values[i] = v
			if pending.Add(-1) == 0 {
				once.Do(func() { out.Complete(values) })
			}
		})
	}
	return out
}

// Map derives a cell by transforming a successful value. An error returned
// by the transform fails the derived cell; an upstream failure passes
// through untouched.
func Map[T, U any](r *Result[T], fn func(T) (U, error)) *Result[U] {
	out := New[U]()
	r.OnDone(func(v T, err error) {
		if err != nil {
			out.Fail(err)
			return
		}
		u, err := fn(v)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(u)
	})
	return out
}

// Then chains a transform that itself returns a cell, flattening the
// nesting. Failures at either stage settle the derived cell.
func Then[T, U any](r *Result[T], fn func(T) *Result[U]) *Result[U] {
	out := New[U]()
	r.OnDone(func(v T, err error) {
		if err != nil {
			out.Fail(err)
			return
		}
		fn(v).OnDone(func(u U, err error) {
			if err != nil {
				out.Fail(err)
				return
			}
			out.Complete(u)
		})
	})
	return out
}
