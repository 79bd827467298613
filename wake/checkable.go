// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"code.hybscloud.com/sqkio/internal/atomicx"
	"code.hybscloud.com/sqkio/task"
)

// CheckableWaker extends Waker with a fired flag so a task can check
// whether the external completion already happened before it suspends
// — useful when the producer may race ahead of the consumer awaiting
// it. fired is cleared in Resume, which runs exactly once per await
// cycle on both the fast (Ready) and suspended path, so the same
// waker object can be rearmed and awaited again for a later,
// independent completion.
type CheckableWaker[T any] struct {
	handle  atomicx.Pointer[task.Handle]
	payload T
	sched   task.Enqueuer
	fired   atomicx.Bool
}

// NewCheckable constructs a CheckableWaker bound to sched.
func NewCheckable[T any](sched task.Enqueuer) *CheckableWaker[T] {
	return &CheckableWaker[T]{sched: sched}
}

// Ready reports whether Wake already fired since the last Resume.
func (w *CheckableWaker[T]) Ready() bool { return w.fired.LoadAcquire() }

// Suspend records h as the handle to enqueue on the next Wake.
func (w *CheckableWaker[T]) Suspend(h task.Handle) {
	hh := h
	w.handle.Store(&hh)
}

// Resume returns the woken payload and clears fired, rearming the
// waker for a subsequent, independent await cycle.
func (w *CheckableWaker[T]) Resume() T {
	w.fired.StoreRelease(false)
	return w.payload
}

// Wake stores v, marks the waker fired, and enqueues the suspended
// handle if one is registered. Calling Wake before any task has
// suspended on this waker leaves fired set so the next Ready check
// short-circuits without ever suspending.
func (w *CheckableWaker[T]) Wake(v T) {
	w.payload = v
	w.fired.StoreRelease(true)
	h := w.handle.Swap(nil)
	if h == nil {
		return
	}
	w.sched.Enqueue(*h)
}
