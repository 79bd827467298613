// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

// Scheduler is a Go rendering of a single-threaded coroutine
// scheduler built around one ready queue of handles:
//
//	ready queue of suspended handles → Scheduler.ready
//	schedule/spawn                   → Scheduler.Spawn
//	run loop                         → Scheduler.Run
//
// The ready ring is configured MT/ST: any number of producer threads
// (Spawn, Waker.wake, YieldPoint re-enqueue from the single run-loop
// goroutine) may enqueue; only Run's goroutine ever dequeues.
//
// Run-loop tracing (resume/empty/stop events) is
// exposed as the optional WithTrace callback rather than hard-wired
// stdout output.
