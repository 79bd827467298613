// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package spin

import "runtime"

// Pause hints to the core that this goroutine is in a busy-wait loop.
// See pause_amd64.go for why this isn't a real YIELD instruction.
func Pause() {
	runtime.Gosched()
}
