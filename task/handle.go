// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task implements stackless-coroutine-style tasks as
// goroutine-per-frame values that hand control back and forth with
// their resumer over a pair of unbuffered channels, since Go has no
// native coroutine the way the source library's C++ does.
//
// A frame goroutine blocks immediately on creation (initial-suspend-
// always) and, at every suspension point, sends on its yield channel
// to hand control back to whoever called Resume, then blocks on its
// resume channel until resumed again. This is the same "goroutine
// parked on a channel until unparked" idiom used for toy scheduler
// simulations in the wider Go ecosystem, generalized here into a
// reusable two-channel rendezvous instead of a single one-shot
// blockChan.
package task

// Handle is an opaque reference to a suspended task frame. The zero
// value is not resumable; Handles are only produced by Go.
type Handle struct {
	resume chan struct{}
	yield  chan struct{}
}

func newHandle() Handle {
	return Handle{
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
	}
}

// Valid reports whether h refers to a real frame.
func (h Handle) Valid() bool { return h.resume != nil }

// Resume drives the frame forward until it next suspends or
// completes, then returns. Per spec, this is a cross-thread-unsafe
// operation aside from the two sanctioned exceptions (ring enqueue,
// Waker.wake): call it only from the scheduler thread.
func (h Handle) Resume() {
	h.resume <- struct{}{}
	<-h.yield
}

// parkSuspend hands control back to whoever is blocked in Resume,
// then blocks until this frame is resumed again. Used by Await for
// every suspension point except a task's own final suspension.
func (h Handle) parkSuspend() {
	h.yield <- struct{}{}
	<-h.resume
}

// parkFinal hands control back to whoever is blocked in Resume one
// last time; the frame goroutine exits immediately afterward and is
// never resumed again.
func (h Handle) parkFinal() {
	h.yield <- struct{}{}
}

// awaitInitialResume blocks the freshly spawned frame goroutine until
// its first Resume call, implementing the always-suspend initial
// policy: no body statements run before this returns.
func (h Handle) awaitInitialResume() {
	<-h.resume
}
