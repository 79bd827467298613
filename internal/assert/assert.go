// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build sqkio_debug

package assert

// Enabled is true in a debug build (-tags sqkio_debug).
const Enabled = true

// That panics with msg if cond is false. Compiled out (a no-op) unless
// the sqkio_debug build tag is set, so release builds pay nothing for
// protocol-misuse checks such as a task awaited twice or a destroyed
// guard reused.
func That(cond bool, msg string) {
	if !cond {
		panic("sqkio: assertion failed: " + msg)
	}
}
