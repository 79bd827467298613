// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import "code.hybscloud.com/sqkio/task"

// YieldPoint always suspends the calling task and re-enqueues it at
// the tail of its scheduler's ready ring, guaranteeing fairness
// between pure-compute tasks that would otherwise never suspend.
type YieldPoint struct {
	sched task.Enqueuer
}

// NewYieldPoint constructs a YieldPoint bound to sched.
func NewYieldPoint(sched task.Enqueuer) *YieldPoint {
	return &YieldPoint{sched: sched}
}

// Ready always reports false: a YieldPoint never completes without
// suspending.
func (y *YieldPoint) Ready() bool { return false }

// Suspend re-enqueues h immediately rather than waiting for an
// external event.
func (y *YieldPoint) Suspend(h task.Handle) {
	y.sched.Enqueue(h)
}

// Resume returns nothing of interest; YieldPoint carries no payload.
func (y *YieldPoint) Resume() struct{} { return struct{}{} }
