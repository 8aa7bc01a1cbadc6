// Package promise bridges the settlement of a native asynchronous
// operation into a blocking Go call.
//
// A thenable eventually yields exactly one of two outcomes. Await
// registers both branches once and parks the calling goroutine until
// one fires; there is no polling and no cancellation. Because the
// settlement is delivered on the environment's event-loop goroutine,
// Await must never be called from that goroutine.
package promise

import (
	"fmt"
	"sync"
)

// Thenable registers a two-branch settlement callback pair. Exactly one
// branch fires, at most once; that is the native promise contract and
// it is trusted here, not re-checked.
type Thenable[T any] interface {
	Then(onFulfilled func(value T), onRejected func(reason any))
}

// RejectionError carries the opaque rejection payload of a settled
// operation. The payload is environment-specific and deliberately left
// unclassified; inspecting it requires knowledge of the native error
// shape.
type RejectionError struct {
	Reason any
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("promise rejected: %v", e.Reason)
}

type outcome[T any] struct {
	value    T
	rejected bool
	reason   any
}

// Await blocks until t settles. It returns the fulfilled value, or a
// *RejectionError carrying the rejection payload unchanged.
//
// The channel is buffered and the send guarded by a sync.Once, so the
// settling side can never block and a misbehaving thenable that fires
// both branches still produces exactly one outcome.
func Await[T any](t Thenable[T]) (T, error) {
	settled := make(chan outcome[T], 1)
	var once sync.Once

	t.Then(
		func(v T) {
			once.Do(func() { settled <- outcome[T]{value: v} })
		},
		func(r any) {
			once.Do(func() { settled <- outcome[T]{rejected: true, reason: r} })
		},
	)

	out := <-settled
	if out.rejected {
		var zero T
		return zero, &RejectionError{Reason: out.reason}
	}
	return out.value, nil
}
