// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package collective is a worked example of the integration contract
// external collaborators (a storage library, a fabric library) are
// expected to follow: own a dedicated task that repeatedly polls an
// external completion source and converts each completion into
// exactly one waker.wake(payload) call. No actual network or storage
// code lives here — Source stands in for whatever completion queue a
// real collaborator would poll, so the contract can be exercised and
// tested without any out-of-scope transport.
package collective

import (
	"sync"

	"code.hybscloud.com/sqkio/task"
	"code.hybscloud.com/sqkio/wake"
)

// Completion is one unit of work finished by an external source:
// an opaque request id paired with its result.
type Completion struct {
	ID     uint64
	Result string
}

// Source is a simulated external completion queue. A real fabric or
// storage library would instead expose a poll function backed by a
// completion ring, an io_uring instance, or an RDMA CQ; Source's
// channel-backed Poll plays that role here without pulling in any
// actual transport dependency.
type Source struct {
	completions chan Completion
}

// NewSource constructs a Source with room for backlog pending
// completions before a producer would block.
func NewSource(backlog int) *Source {
	return &Source{completions: make(chan Completion, backlog)}
}

// Complete is called by whatever produces completions (in production,
// a callback invoked by the external library; here, a test or a timer
// goroutine). It never blocks past the channel's backlog capacity.
func (s *Source) Complete(c Completion) {
	s.completions <- c
}

// Poll returns the next completion and true if one was already
// available, or the zero value and false otherwise. Non-blocking, so
// a poller task can interleave it with YieldPoint.
func (s *Source) Poll() (Completion, bool) {
	select {
	case c := <-s.completions:
		return c, true
	default:
		return Completion{}, false
	}
}

// Router pairs a Source with the wakers suspended on each in-flight
// request ID, and owns the dedicated poller task that drains Source
// into those wakers — the pattern every external collaborator is
// expected to follow.
//
// Register is the one Router operation meant to be called from
// outside the scheduler thread (a request submitted by arbitrary
// caller code before its task is even spawned), so pending is guarded
// by a mutex rather than relying on single-thread confinement the way
// task-local state normally does.
type Router struct {
	mu      sync.Mutex
	source  *Source
	pending map[uint64]*wake.Waker[string]
}

// NewRouter constructs a Router over source.
func NewRouter(source *Source) *Router {
	return &Router{
		source:  source,
		pending: make(map[uint64]*wake.Waker[string]),
	}
}

// Register associates id with w: when Source produces a Completion
// for id, w is woken with its Result. Safe to call from any goroutine.
// w is a plain Waker, so if the poller takes that Completion before a
// task has suspended on w, the Result is stored in w but no task is
// enqueued.
func (r *Router) Register(id uint64, w *wake.Waker[string]) {
	r.mu.Lock()
	r.pending[id] = w
	r.mu.Unlock()
}

func (r *Router) take(id uint64) (*wake.Waker[string], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	return w, ok
}

// PollerBody is the body of the dedicated task that drains the
// router's source and wakes the matching waker for each completion,
// yielding between empty polls so it never starves the rest of the
// scheduler. Spawn it once per Router with task.Go and sched.Spawn.
func (r *Router) PollerBody(yp *wake.YieldPoint) func(c *task.Ctx) (struct{}, error) {
	return func(c *task.Ctx) (struct{}, error) {
		for {
			comp, ok := r.source.Poll()
			if !ok {
				task.Await[struct{}](c, yp)
				continue
			}
			if w, found := r.take(comp.ID); found {
				w.Wake(comp.Result)
			}
			task.Await[struct{}](c, yp)
		}
	}
}
