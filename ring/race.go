// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active. Tests use it
// to skip the torture-style concurrent cases that generate far more
// goroutines than the race detector's shadow memory tracks cheaply.
const RaceEnabled = true
