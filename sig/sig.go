// Package sig is the reactive layer the collapse engine is built on:
// signals, eager computeds, effects, batches and owners.
//
// Each goroutine gets its own runtime (a single one under wasm),
// so reactive nodes must be created and used from the same goroutine.
package sig

import "github.com/AnatoleLucet/collapse/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your typical read/write signal.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial),
	}
}

// Read the current value of the signal, tracking the dependency if within a reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Write a new value to the signal, triggering updates to any dependents.
// Writing a value equal to the current one does nothing.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

// Update writes the result of fn applied to the current (untracked) value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Write(fn(as[T](s.signal.Value())))
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a computed signal that derives its value from other signals (its a memo).
// Dependents are only notified when the derived value changes.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}),
	}
}

// Read the current value of the computed signal, tracking the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Signal.Read())
}

// Constant is a read-only source that never changes.
type Constant[T any] struct{ value T }

func NewConstant[T any](v T) Constant[T] { return Constant[T]{v} }

func (c Constant[T]) Read() T { return c.value }

// NewBatch batches multiple signal writes into a single update cycle,
// instead of triggering updates after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// NewEffect creates a reactive effect that runs the given function
// whenever its dependencies change.
func NewEffect(fn func()) {
	internal.GetRuntime().NewEffect(internal.EffectUser, fn)
}

// NewRenderEffect is like NewEffect, but runs before user effects of the same flush.
// Use it for effects that write to the screen.
func NewRenderEffect(fn func()) {
	internal.GetRuntime().NewEffect(internal.EffectRender, fn)
}

// Watch calls fn with the new value each time source changes.
// Unlike an effect, it does not run for the initial value and fn is untracked.
func Watch[T comparable](source interface{ Read() T }, fn func(T)) {
	first := true
	var prev T

	NewEffect(func() {
		v := source.Read()

		if first {
			first, prev = false, v
			return
		}
		if v == prev {
			return
		}
		prev = v

		Untrack(func() struct{} {
			fn(v)
			return struct{}{}
		})
	})
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called when the current owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new reactive owner.
// An owner manages the lifecycle of reactive nodes created within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
// Each reactive node created within the function will be a child of this owner,
// and will be disposed when owner.Dispose() is called on this owner.
func (o *Owner) Run(fn func() error) error {
	var err error
	o.owner.Run(func() { err = fn() })
	return err
}

// Dispose this owner and all its children.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Add a cleanup function to be called ONCE when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called when the owner is disposed (each time Dispose is called).
func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }

// Add a function to be called when a panic occurs within this owner.
// If no error listener is registered, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
