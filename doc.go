// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sqkio is the root of a small cooperative task-scheduling
// substrate:
//
//   - ring    — a bounded lock-free FIFO generic over element type and
//     over independently configured producer/consumer synchronization
//     disciplines (ST, MT, MT-HTS; MT-RTS is declared but rejected at
//     construction).
//   - task    — goroutine-per-frame tasks emulating stackless
//     coroutines, with the initial-suspend-always and parent-adoption
//     semantics of a real coroutine/promise type.
//   - wake    — the one-shot rendezvous (Waker, CheckableWaker) and
//     fairness (YieldPoint) primitives tasks suspend on.
//   - sched   — the single-threaded cooperative runner that resumes
//     task handles pulled from a ring.
//   - collective — a worked example of wiring an external completion
//     source into the scheduler.
//
// This package itself exports nothing; import the subpackage you need.
package sqkio
