// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package spin

import "runtime"

// Pause hints to the core that this goroutine is in a busy-wait loop.
// A true PAUSE instruction needs a Go assembly stub; lacking one here,
// runtime.Gosched is the closest portable substitute available to
// ordinary package code.
func Pause() {
	runtime.Gosched()
}
