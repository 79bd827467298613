// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wake provides the awaitable rendezvous primitives tasks
// suspend on: a one-shot Waker, a CheckableWaker that may already have
// fired before the task awaits it, and a YieldPoint for cooperative
// fairness. All three implement task.Awaitable[T].
package wake

import (
	"code.hybscloud.com/sqkio/internal/atomicx"
	"code.hybscloud.com/sqkio/task"
)

// Waker is a single-slot one-shot rendezvous between exactly one
// suspender and one external waker, carrying an optional payload of
// type T. Construct with New: the zero value has no scheduler, so
// waking a task suspended on it panics.
//
// wake is the one operation meant to be called from a producer thread
// other than the scheduler thread (alongside Scheduler.Enqueue, which
// it calls into). The handle slot uses an atomic pointer so a
// concurrent wake observes a consistent view regardless of which side
// runs first; the payload write in wake happens-before the task's read
// of it in Resume because both are chained through the same atomic
// handle hand-off and the ring's own release/acquire pair.
type Waker[T any] struct {
	handle  atomicx.Pointer[task.Handle]
	payload T
	sched   task.Enqueuer
}

// New constructs a Waker that, when woken, enqueues the suspended
// task's handle onto sched.
func New[T any](sched task.Enqueuer) *Waker[T] {
	return &Waker[T]{sched: sched}
}

// Ready always reports false: a plain Waker has no way to know it was
// already woken before being awaited. Use CheckableWaker if the
// external event may race ahead of the await.
func (w *Waker[T]) Ready() bool { return false }

// Suspend records h as the handle to enqueue when Wake is called.
func (w *Waker[T]) Suspend(h task.Handle) {
	hh := h
	w.handle.Store(&hh)
}

// Resume returns the woken payload.
func (w *Waker[T]) Resume() T { return w.payload }

// Wake stores v and, if a task is currently suspended on this waker,
// enqueues it and clears the handle slot. A second Wake call before
// the suspender has observed the first overwrites the payload without
// re-enqueuing, per spec's documented double-wake behavior.
func (w *Waker[T]) Wake(v T) {
	w.payload = v
	h := w.handle.Swap(nil)
	if h == nil {
		return
	}
	w.sched.Enqueue(*h)
}
