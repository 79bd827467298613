// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomicx provides typed atomic wrappers with the named
// Load/Store/Add/CompareAndSwap surface the ring, task, wake and sched
// packages are written against.
//
// Go's memory model gives every sync/atomic operation sequentially
// consistent semantics: there is no portable way to ask for a weaker
// "relaxed" load or a one-way "release" store the way C++'s
// std::atomic does. The method names below (LoadRelaxed, LoadAcquire,
// StoreRelease, ...) are kept only so call sites document the ordering
// the algorithm actually requires; every variant compiles down to the
// same sequentially consistent sync/atomic op, which is always at
// least as strong as what the name promises.
package atomicx

import "sync/atomic"

// Uint32 is a 32-bit atomic counter.
type Uint32 struct {
	v atomic.Uint32
}

func (a *Uint32) LoadRelaxed() uint32 { return a.v.Load() }
func (a *Uint32) LoadAcquire() uint32 { return a.v.Load() }
func (a *Uint32) StoreRelaxed(x uint32) { a.v.Store(x) }
func (a *Uint32) StoreRelease(x uint32) { a.v.Store(x) }
func (a *Uint32) AddAcqRel(delta uint32) uint32 { return a.v.Add(delta) }
func (a *Uint32) CompareAndSwapAcqRel(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint32) CompareAndSwapRelaxed(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}

// Uint64 is a 64-bit atomic counter.
type Uint64 struct {
	v atomic.Uint64
}

func (a *Uint64) LoadRelaxed() uint64 { return a.v.Load() }
func (a *Uint64) LoadAcquire() uint64 { return a.v.Load() }
func (a *Uint64) StoreRelaxed(x uint64) { a.v.Store(x) }
func (a *Uint64) StoreRelease(x uint64) { a.v.Store(x) }
func (a *Uint64) AddAcqRel(delta uint64) uint64 { return a.v.Add(delta) }
func (a *Uint64) CompareAndSwapAcqRel(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint64) CompareAndSwapRelaxed(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}

// Bool is an atomic boolean flag.
type Bool struct {
	v atomic.Bool
}

func (a *Bool) LoadRelaxed() bool { return a.v.Load() }
func (a *Bool) LoadAcquire() bool { return a.v.Load() }
func (a *Bool) StoreRelease(x bool) { a.v.Store(x) }
func (a *Bool) CompareAndSwapAcqRel(old, new bool) bool {
	return a.v.CompareAndSwap(old, new)
}

// Pointer is an atomic pointer used to carry a task.Handle or a waker
// payload pointer between threads without locking.
type Pointer[T any] struct {
	v atomic.Pointer[T]
}

func (a *Pointer[T]) Load() *T                   { return a.v.Load() }
func (a *Pointer[T]) Store(x *T)                 { a.v.Store(x) }
func (a *Pointer[T]) Swap(x *T) *T                { return a.v.Swap(x) }
func (a *Pointer[T]) CompareAndSwap(old, new *T) bool {
	return a.v.CompareAndSwap(old, new)
}
