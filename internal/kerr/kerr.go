// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kerr classifies the sentinel errors used across ring, wake,
// task and sched so that a caller can tell a back-pressure signal
// apart from a genuine failure without type-asserting on every call
// site.
package kerr

import "errors"

// ErrWouldBlock indicates the operation cannot proceed immediately: the
// ring is full (Enqueue) or empty (Dequeue). It is a control-flow
// signal, never a failure, and the caller is expected to retry with
// backoff or suspend rather than treat it as an error.
var ErrWouldBlock = errors.New("sqkio: would block")

// ErrSyncModeUnsupported is returned by ring construction when asked
// for a SyncMode the implementation does not provide (MT-RTS):
// construction must fail rather than silently substitute a different
// discipline.
var ErrSyncModeUnsupported = errors.New("sqkio: sync mode not implemented")

// IsWouldBlock reports whether err is, or wraps, ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsSemantic reports whether err is a control-flow signal rather than
// an unexpected failure. Both sentinels defined in this package are
// semantic.
func IsSemantic(err error) bool {
	return errors.Is(err, ErrWouldBlock) || errors.Is(err, ErrSyncModeUnsupported)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, or any semantic sentinel.
func IsNonFailure(err error) bool {
	return err == nil || IsSemantic(err)
}
