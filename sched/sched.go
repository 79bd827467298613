// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sched implements the single-threaded cooperative scheduler
// that drives task.Handle values pulled from a ring.Ring: a bounded
// MPSC ring of ready handles, with exactly one consumer (the goroutine
// that calls Run).
package sched

import (
	"code.hybscloud.com/sqkio/internal/assert"
	"code.hybscloud.com/sqkio/internal/atomicx"
	"code.hybscloud.com/sqkio/internal/kerr"
	"code.hybscloud.com/sqkio/internal/spin"
	"code.hybscloud.com/sqkio/ring"
	"code.hybscloud.com/sqkio/task"
)

// Event names a point in the run loop's lifecycle, for callers who
// want to observe scheduling behavior without the loop itself printing
// anything.
type Event int

const (
	// EventResume fires immediately before a dequeued handle is resumed.
	EventResume Event = iota
	// EventEmpty fires on every failed poll of the ready ring.
	EventEmpty
	// EventStop fires once, just before Run returns.
	EventStop
)

func (e Event) String() string {
	switch e {
	case EventResume:
		return "resume"
	case EventEmpty:
		return "empty"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Scheduler is a single-thread cooperative runner. Any number of
// producer threads (other goroutines, external completion callbacks,
// Waker.wake) may call Spawn or Enqueue; only the goroutine that calls
// Run ever resumes a handle.
//
// Scheduler owns its ready ring through a ring.Guard rather than a
// bare *ring.Ring, so the ring's lifetime is deterministic: TakeReady
// moves the ring out (and its still-queued handles with it) into a
// successor Scheduler built with NewFromRing, and Close releases it
// when the scheduler is discarded instead of relying on GC.
type Scheduler struct {
	ready   *ring.Guard[task.Handle]
	stopped atomicx.Bool
	trace   func(Event)
}

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithTrace installs a callback invoked for each lifecycle Event Run
// passes through. Off by default; callers who want a trace printed to
// stdout supply their own fmt.Println-based callback instead of the
// scheduler hard-wiring one.
func WithTrace(fn func(Event)) Option {
	return func(s *Scheduler) { s.trace = fn }
}

// New constructs a Scheduler whose ready ring holds up to readyCap
// live handles (rounded up per ring.New's power-of-two rule).
func New(readyCap int, opts ...Option) (*Scheduler, error) {
	r, err := ring.New[task.Handle](readyCap, ring.MT, ring.ST)
	if err != nil {
		assert.That(kerr.IsSemantic(err), "sched: ring.New returned an unrecognized error: "+err.Error())
		return nil, err
	}
	return NewFromRing(r, opts...), nil
}

// NewFromRing wraps an already-constructed ready ring in a new
// Scheduler, taking ownership of it. Pair with TakeReady to rebuild a
// scheduler around a ring recovered from a predecessor Scheduler,
// carrying over any handles still queued instead of reallocating and
// losing them.
func NewFromRing(r *ring.Ring[task.Handle], opts ...Option) *Scheduler {
	s := &Scheduler{ready: ring.NewGuard(r, nil)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TakeReady transfers ownership of the scheduler's ready ring to the
// caller and leaves this Scheduler inert, the Go analogue of a move
// constructor. Any handles still queued move with the ring. Returns
// nil if the ring was already taken or the scheduler already Closed.
func (s *Scheduler) TakeReady() *ring.Ring[task.Handle] {
	return s.ready.Take()
}

// Close releases the scheduler's ready ring. Idempotent, and a no-op
// if TakeReady already ran; safe to call even if Run was never
// started.
func (s *Scheduler) Close() {
	if s.ready.Closed() {
		return
	}
	s.ready.Close()
}

func (s *Scheduler) emit(e Event) {
	if s.trace != nil {
		s.trace(e)
	}
}

// Spawn enqueues t's handle, kicking it off the next time Run pops it.
// Safe to call from any thread and from inside any running task.
func (s *Scheduler) Spawn(t interface{ Handle() task.Handle }) bool {
	return s.Enqueue(t.Handle())
}

// Enqueue places an arbitrary handle on the ready ring. Used directly
// by wake.Waker and wake.YieldPoint; exposed so callers can implement
// their own awaitables against the same scheduler.
func (s *Scheduler) Enqueue(h task.Handle) bool {
	_, err := s.ready.Ring().Enqueue(true, h)
	if err == nil {
		return true
	}
	assert.That(kerr.IsWouldBlock(err), "sched: ring enqueue returned an unrecognized error: "+err.Error())
	return false
}

// Stop requests that Run return after its current resume completes.
// Idempotent; does not drain the ready ring.
func (s *Scheduler) Stop() {
	s.stopped.StoreRelease(true)
}

// Run pops one handle at a time and resumes it, spinning with a
// pause-then-yield backoff while the ready ring is empty. It returns
// once Stop has been observed immediately after a resume. Handles
// still queued at that point are not resumed and their frames are not
// collected by this call — a documented caller responsibility.
func (s *Scheduler) Run() {
	sw := spin.Wait{}
	var out [1]task.Handle
	for {
		n, err := s.ready.Ring().Dequeue(true, out[:])
		if n == 0 {
			assert.That(kerr.IsNonFailure(err), "sched: ring dequeue returned an unrecognized error: "+errString(err))
			s.emit(EventEmpty)
			sw.Once()
			continue
		}
		sw.Reset()
		s.emit(EventResume)
		out[0].Resume()
		if s.stopped.LoadAcquire() {
			s.emit(EventStop)
			return
		}
	}
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
