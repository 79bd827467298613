// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Task/Promise semantics in terms of the usual C++-coroutine vocabulary:
//
//	Task<T>/Promise<T>        → Task[T], Handle
//	SuspendAlways/await_ready  → Awaitable[T].Ready
//	await_suspend              → Awaitable[T].Suspend / AwaitTask
//	await_resume               → Awaitable[T].Resume
//	resume()/destroy()/done()  → Handle.Resume, (GC), Task[T].Done
//
// "Destroy" has no Go analogue: a finished frame's goroutine simply
// returns and is collected once unreachable. What a C++ coroutine
// calls destruction, this package expresses as an ordering guarantee
// on when parkFinal runs relative to the parent resume — see finish
// in task.go.
