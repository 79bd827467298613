// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !sqkio_debug

package assert

// Enabled is false unless built with -tags sqkio_debug.
const Enabled = false

// That is a no-op in release builds; see the sqkio_debug variant.
func That(cond bool, msg string) {}
