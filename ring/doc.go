// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// How the four fixed-function ring shapes this package replaces map
// onto Ring[T]'s SyncMode pairs:
//
//	single-producer/single-consumer → Ring[T] with prod=ST,    cons=ST
//	multi-producer/single-consumer  → Ring[T] with prod=MT,    cons=ST
//	single-producer/multi-consumer  → Ring[T] with prod=ST,    cons=MT
//	multi-producer/multi-consumer   → Ring[T] with prod=MT,    cons=MT
//	packed head/tail word variant   → Ring[T] with either side =MTHTS
//	(unimplemented)                 → MTRTS: declared, New rejects it
//
// A previous generation of this queue family generated one concrete
// type per combination so each could be devirtualized and specialized
// per element size at compile time. This package keeps the
// devirtualization that matters (Go generics monomorphize Ring[T] per
// T) but collapses the four producer disciplines and four consumer
// disciplines into runtime fields (prodMode, consMode) rather than
// sixteen generated type combinations, since the discipline is chosen
// once at construction and never varies for the lifetime of a ring.
