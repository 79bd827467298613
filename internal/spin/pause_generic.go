// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package spin

import "runtime"

// Pause has no architecture-specific pause instruction on this
// platform; it yields the P instead.
func Pause() {
	runtime.Gosched()
}
