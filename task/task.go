// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "code.hybscloud.com/sqkio/internal/assert"

// Enqueuer is satisfied by the scheduler. Wakers and YieldPoint hold
// one of these rather than a concrete scheduler type so that wake and
// sched do not form an import cycle with task.
type Enqueuer interface {
	Enqueue(h Handle) bool
}

// Awaitable is the await_ready/await_suspend/await_resume triple every
// suspension point implements: Waker, CheckableWaker, YieldPoint.
// Awaiting a child Task uses the dedicated AwaitTask entry point
// instead, because its suspend step must conditionally run the child
// synchronously before deciding whether to suspend at all.
type Awaitable[T any] interface {
	// Ready reports whether the awaited condition already holds; if
	// true, Await skips suspension and calls Resume directly.
	Ready() bool
	// Suspend registers h to be resumed when the awaited condition
	// becomes true. Called only when Ready returned false.
	Suspend(h Handle)
	// Resume returns the awaited value. Called exactly once per
	// Await, either immediately (Ready was true) or after resumption.
	Resume() T
}

// Ctx is passed to every task body. It carries the task's own handle
// (so awaitables can register it) and the scheduler it was spawned
// onto (so awaitables can re-enqueue it).
type Ctx struct {
	self  Handle
	sched Enqueuer
}

// Handle returns the calling task's own handle.
func (c *Ctx) Handle() Handle { return c.self }

// Sched returns the Enqueuer the task was spawned onto.
func (c *Ctx) Sched() Enqueuer { return c.sched }

// Await suspends the calling task on a until a becomes ready, then
// returns its value. Must be called from inside a task body running
// on the scheduler thread.
func Await[V any](c *Ctx, a Awaitable[V]) V {
	if a.Ready() {
		return a.Resume()
	}
	a.Suspend(c.self)
	c.self.parkSuspend()
	return a.Resume()
}

// Task is a handle to a spawned coroutine-style computation that
// eventually produces a T or an error. The zero value is not usable;
// construct with Go.
type Task[T any] struct {
	handle    Handle
	done      chan struct{}
	result    T
	err       error
	parent    Handle
	hasParent bool
}

// Go spawns a new Task. The task's body does not run at all until the
// task is first resumed, either by awaiting it from another task (see
// AwaitTask) or by spawning it onto a Scheduler.
func Go[T any](sched Enqueuer, body func(c *Ctx) (T, error)) *Task[T] {
	t := &Task[T]{
		handle: newHandle(),
		done:   make(chan struct{}),
	}
	ctx := &Ctx{self: t.handle, sched: sched}
	go func() {
		t.handle.awaitInitialResume()
		val, err := body(ctx)
		t.finish(val, err)
	}()
	return t
}

// Handle returns the task's handle, suitable for Scheduler.Spawn or
// Scheduler.Enqueue.
func (t *Task[T]) Handle() Handle { return t.handle }

// Done returns a channel that is closed once the task has produced a
// result. Safe to read from any goroutine, including outside the
// scheduler thread, since it only observes state — it never resumes
// or destroys the task.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Result returns the task's outcome. Valid only after Done is closed;
// calling it earlier returns the zero value and a nil error.
func (t *Task[T]) Result() (T, error) { return t.result, t.err }

func (t *Task[T]) isDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// finish records the task's outcome and runs the final-suspension
// policy: if a parent awaited this task without it completing
// synchronously, resume the parent before signaling this frame's own
// resumer, so the parent observes the result before this goroutine
// exits.
func (t *Task[T]) finish(val T, err error) {
	t.result, t.err = val, err
	close(t.done)
	if t.hasParent {
		t.parent.Resume()
	}
	t.handle.parkFinal()
}

// AwaitTask implements parent adoption: the child is driven through
// its initial suspension exactly once; if that alone finished it, the
// caller continues without suspending; if not, the caller is recorded
// as the child's parent and suspends until the child's final
// suspension resumes it.
func AwaitTask[T any](c *Ctx, child *Task[T]) (T, error) {
	child.handle.Resume()
	if child.isDone() {
		return child.result, child.err
	}
	assert.That(!child.hasParent, "task: child task awaited by more than one parent")
	child.parent = c.self
	child.hasParent = true
	c.self.parkSuspend()
	return child.result, child.err
}
