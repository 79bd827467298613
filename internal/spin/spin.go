// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spin provides a small spin-then-yield backoff helper used by
// the contended paths of ring and by the scheduler's empty-ring poll
// loop.
package spin

import "runtime"

// spinLimit is the number of Once calls that go through Pause before
// Once calls runtime.Gosched directly. Every Pause in this package is
// itself runtime.Gosched, so both phases yield the processor.
const spinLimit = 32

// Wait tracks how many times Once has been called since the last
// Reset, switching from Pause to a direct runtime.Gosched after
// spinLimit calls.
type Wait struct {
	n int
}

// Once performs one backoff step and advances internal state.
func (w *Wait) Once() {
	if w.n < spinLimit {
		Pause()
		w.n++
		return
	}
	runtime.Gosched()
}

// Reset clears the escalation state, used after a successful
// operation so the next contention episode starts from a tight spin.
func (w *Wait) Reset() {
	w.n = 0
}
