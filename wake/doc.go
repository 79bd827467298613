// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// The three suspension points a task body can await:
//
//	one-shot external rendezvous       → Waker[T]
//	one-shot rendezvous with a pre-check → CheckableWaker[T]
//	scheduler-level yield                → YieldPoint
