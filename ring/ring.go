// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded power-of-two ring buffer generic
// over its element type and over the synchronization discipline used
// independently on its producer and consumer sides.
//
// It generalizes a family of fixed-function SPSC/MPSC/SPMC/MPMC ring
// types into a single Ring[T] selected by a pair of SyncMode values,
// covering four named disciplines (ST, MT, MTHTS, MTRTS) instead of
// four concrete types:
//
//	ST/ST   → Lamport ring with cached indices
//	MT/ST   → CAS-claim producer, single consumer
//	ST/MT   → single producer, CAS-claim consumer
//	MT/MT   → batch-CAS reservation claiming n slots per CAS instead of
//	          one CAS per element
//	MTHTS   → combined head/tail word per side, one CAS reserves and
//	          marks in-flight, one release store publishes
//	MTRTS   → declared, rejected at construction (see New)
package ring

import (
	"fmt"

	"code.hybscloud.com/sqkio/internal/atomicx"
	"code.hybscloud.com/sqkio/internal/kerr"
	"code.hybscloud.com/sqkio/internal/spin"
)

// SyncMode selects the concurrency discipline used on one side (the
// producer or the consumer) of a Ring.
type SyncMode int

const (
	// ST: single-thread. No CAS/FAA; the caller guarantees exclusion
	// on this side. Head/tail are still published atomically so the
	// opposite side observes them safely.
	ST SyncMode = iota
	// MT: multi-thread, classic. Reservation via CAS on head; tail
	// publication waits for same-side predecessors to retire first.
	MT
	// MTHTS: multi-thread, head/tail sync. Head and tail are packed
	// into one 64-bit word updated by CAS; no two reservations on
	// this side are ever in flight at once.
	MTHTS
	// MTRTS: multi-thread, relaxed tail sync. Declared in the type
	// surface but not implemented: New rejects it at construction.
	MTRTS
)

func (m SyncMode) String() string {
	switch m {
	case ST:
		return "ST"
	case MT:
		return "MT"
	case MTHTS:
		return "MTHTS"
	case MTRTS:
		return "MTRTS"
	default:
		return fmt.Sprintf("SyncMode(%d)", int(m))
	}
}

// cacheLinePad is sized so that, in Ring[T], the field that follows it
// starts on a new cache line regardless of the size of what precedes
// it, at the cost of some wasted space.
type cacheLinePad [64]byte

// cursor holds one side's reservation/publication state. head and tail
// serve the ST and MT disciplines directly; hts serves MTHTS, packing
// head in the upper 32 bits and tail in the lower 32 bits so a single
// CAS can move both at once.
type cursor struct {
	head atomicx.Uint32
	tail atomicx.Uint32
	hts  atomicx.Uint64
	_    [64 - 4 - 4 - 8]byte
}

func packHTS(head, tail uint32) uint64 {
	return uint64(head)<<32 | uint64(tail)
}

func unpackHTS(v uint64) (head, tail uint32) {
	return uint32(v >> 32), uint32(v)
}

func (c *cursor) loadHead(mode SyncMode) uint32 {
	if mode == MTHTS {
		h, _ := unpackHTS(c.hts.LoadAcquire())
		return h
	}
	return c.head.LoadAcquire()
}

func (c *cursor) loadTail(mode SyncMode) uint32 {
	if mode == MTHTS {
		_, t := unpackHTS(c.hts.LoadAcquire())
		return t
	}
	return c.tail.LoadAcquire()
}

// Ring is a bounded FIFO of fixed-size elements, parameterized by
// element type T and by independently configured producer/consumer
// SyncModes. The zero value is not usable; construct with New.
type Ring[T any] struct {
	// immutable geometry
	size     uint32
	mask     uint32
	capacity uint32
	prodMode SyncMode
	consMode SyncMode

	_    cacheLinePad
	prod cursor
	_    cacheLinePad
	cons cursor
	_    cacheLinePad

	slots []T
}

// New allocates a Ring whose usable capacity is the smallest power of
// two strictly greater than requested, minus one. requested == 0 is
// accepted (capacity degenerates to 1 slot fewer than the minimum
// size, i.e. 1). Returns ErrSyncModeUnsupported if either side names
// MTRTS (not implemented).
func New[T any](requested int, prod, cons SyncMode) (*Ring[T], error) {
	if prod == MTRTS || cons == MTRTS {
		return nil, kerr.ErrSyncModeUnsupported
	}
	if requested < 0 {
		panic("sqkio/ring: requested count must be >= 0")
	}
	n := requested + 1
	if n > 1<<31 {
		panic("sqkio/ring: requested count too large")
	}
	size := roundUpPow2(uint32(n))
	if size < 2 {
		size = 2
	}

	r := &Ring[T]{
		size:     size,
		mask:     size - 1,
		capacity: size - 1,
		prodMode: prod,
		consMode: cons,
		slots:    make([]T, size),
	}
	prefault(r.slots)
	return r, nil
}

func roundUpPow2(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}

// prefault touches every slot once so that, on platforms where Go's
// runtime has not yet backed the slice with physical pages (a large
// make([]T, n) can be lazily faulted), the first Enqueue/Dequeue pass
// does not pay a page-fault tax mid-algorithm.
func prefault[T any](slots []T) {
	var zero T
	for i := range slots {
		slots[i] = zero
	}
}

// Cap returns the ring's usable capacity (size - 1).
func (r *Ring[T]) Cap() int { return int(r.capacity) }

// Len returns a snapshot of the number of live elements. Because both
// cursors can move concurrently with the read, this is only ever a
// point-in-time estimate for diagnostics, never a basis for control
// flow: an accurate count would require cross-core synchronization
// the ring intentionally does not provide.
func (r *Ring[T]) Len() int {
	tail := r.prod.loadTail(r.prodMode)
	head := r.cons.loadHead(r.consMode)
	return int(tail - head)
}

// Enqueue attempts to place all of vals. It returns the number of
// elements actually enqueued. With transactional set, either every
// element of vals is enqueued or none are; otherwise as many as fit
// are enqueued. Passing zero vals is a no-op that returns (0, nil).
func (r *Ring[T]) Enqueue(transactional bool, vals ...T) (int, error) {
	if len(vals) == 0 {
		return 0, nil
	}
	base, n, ok := r.reserveProducer(uint32(len(vals)), transactional)
	if !ok {
		return 0, kerr.ErrWouldBlock
	}
	if n == 0 {
		return 0, kerr.ErrWouldBlock
	}
	r.copyIn(base, vals[:n])
	r.publishProducer(base, n)
	return int(n), nil
}

// Dequeue removes up to len(out) elements into out. It returns the
// number of elements actually dequeued. With transactional set, either
// len(out) elements are dequeued or none are. Passing a zero-length out is a
// no-op that returns (0, nil).
func (r *Ring[T]) Dequeue(transactional bool, out []T) (int, error) {
	if len(out) == 0 {
		return 0, nil
	}
	base, n, ok := r.reserveConsumer(uint32(len(out)), transactional)
	if !ok {
		return 0, kerr.ErrWouldBlock
	}
	if n == 0 {
		return 0, kerr.ErrWouldBlock
	}
	r.copyOut(base, out[:n])
	r.publishConsumer(base, n)
	return int(n), nil
}

// EnqueueOne is the single-element convenience form used throughout
// task/wake/sched: enqueue(v) → 0|1.
func (r *Ring[T]) EnqueueOne(v T) bool {
	n, err := r.Enqueue(true, v)
	return err == nil && n == 1
}

// DequeueOne is the single-element convenience form used throughout
// task/wake/sched: dequeue(out) → 0|1.
func (r *Ring[T]) DequeueOne() (T, bool) {
	var out [1]T
	n, err := r.Dequeue(true, out[:])
	if err != nil || n != 1 {
		var zero T
		return zero, false
	}
	return out[0], true
}

// copyIn writes vals into slots starting at base (mod size), splitting
// across the wrap boundary into at most two contiguous spans. Go's
// builtin copy already lowers to an optimized memmove, so this stays
// on the builtin rather than hand-unrolled stores.
func (r *Ring[T]) copyIn(base uint32, vals []T) {
	start := base & r.mask
	n := uint32(len(vals))
	first := r.size - start
	if first >= n {
		copy(r.slots[start:start+n], vals)
		return
	}
	copy(r.slots[start:r.size], vals[:first])
	copy(r.slots[0:n-first], vals[first:])
}

func (r *Ring[T]) copyOut(base uint32, out []T) {
	start := base & r.mask
	n := uint32(len(out))
	first := r.size - start
	var zero T
	if first >= n {
		copy(out, r.slots[start:start+n])
		for i := start; i < start+n; i++ {
			r.slots[i] = zero
		}
		return
	}
	copy(out[:first], r.slots[start:r.size])
	copy(out[first:], r.slots[0:n-first])
	for i := start; i < r.size; i++ {
		r.slots[i] = zero
	}
	for i := uint32(0); i < n-first; i++ {
		r.slots[i] = zero
	}
}

// reserveProducer implements the reservation algorithm for the
// producer side, dispatching on r.prodMode.
func (r *Ring[T]) reserveProducer(n uint32, transactional bool) (base uint32, got uint32, ok bool) {
	switch r.prodMode {
	case ST:
		old := r.prod.head.LoadRelaxed()
		consTail := r.cons.loadTail(r.consMode)
		free := r.capacity - (old - consTail)
		got = n
		if got > free {
			got = free
		}
		if transactional && got < n {
			return 0, 0, true
		}
		if got == 0 {
			return old, 0, true
		}
		r.prod.head.StoreRelaxed(old + got)
		return old, got, true
	case MT:
		sw := spin.Wait{}
		for {
			old := r.prod.head.LoadAcquire()
			consTail := r.cons.loadTail(r.consMode)
			free := r.capacity - (old - consTail)
			got = n
			if got > free {
				got = free
			}
			if transactional && got < n {
				return 0, 0, true
			}
			if got == 0 {
				return old, 0, true
			}
			if r.prod.head.CompareAndSwapAcqRel(old, old+got) {
				// Wait for same-side predecessors to publish
				// their tail before this reservation's tail
				// becomes visible, preserving FIFO order.
				sw2 := spin.Wait{}
				for r.prod.tail.LoadAcquire() != old {
					sw2.Once()
				}
				return old, got, true
			}
			sw.Once()
		}
	case MTHTS:
		sw := spin.Wait{}
		for {
			packed := r.prod.hts.LoadAcquire()
			head, tail := unpackHTS(packed)
			if head != tail {
				// Another reservation on this side is still
				// in flight; wait for it to publish.
				sw.Once()
				continue
			}
			consTail := r.cons.loadTail(r.consMode)
			free := r.capacity - (head - consTail)
			got = n
			if got > free {
				got = free
			}
			if transactional && got < n {
				return 0, 0, true
			}
			if got == 0 {
				return head, 0, true
			}
			newPacked := packHTS(head+got, tail)
			if r.prod.hts.CompareAndSwapAcqRel(packed, newPacked) {
				return head, got, true
			}
			sw.Once()
		}
	default:
		return 0, 0, false
	}
}

func (r *Ring[T]) publishProducer(base, n uint32) {
	switch r.prodMode {
	case ST:
		r.prod.tail.StoreRelease(base + n)
	case MT:
		r.prod.tail.StoreRelease(base + n)
	case MTHTS:
		r.prod.hts.StoreRelease(packHTS(base+n, base+n))
	}
}

func (r *Ring[T]) reserveConsumer(n uint32, transactional bool) (base uint32, got uint32, ok bool) {
	switch r.consMode {
	case ST:
		old := r.cons.head.LoadRelaxed()
		prodTail := r.prod.loadTail(r.prodMode)
		avail := prodTail - old
		got = n
		if got > avail {
			got = avail
		}
		if transactional && got < n {
			return 0, 0, true
		}
		if got == 0 {
			return old, 0, true
		}
		r.cons.head.StoreRelaxed(old + got)
		return old, got, true
	case MT:
		sw := spin.Wait{}
		for {
			old := r.cons.head.LoadAcquire()
			prodTail := r.prod.loadTail(r.prodMode)
			avail := prodTail - old
			got = n
			if got > avail {
				got = avail
			}
			if transactional && got < n {
				return 0, 0, true
			}
			if got == 0 {
				return old, 0, true
			}
			if r.cons.head.CompareAndSwapAcqRel(old, old+got) {
				sw2 := spin.Wait{}
				for r.cons.tail.LoadAcquire() != old {
					sw2.Once()
				}
				return old, got, true
			}
			sw.Once()
		}
	case MTHTS:
		sw := spin.Wait{}
		for {
			packed := r.cons.hts.LoadAcquire()
			head, tail := unpackHTS(packed)
			if head != tail {
				sw.Once()
				continue
			}
			prodTail := r.prod.loadTail(r.prodMode)
			avail := prodTail - head
			got = n
			if got > avail {
				got = avail
			}
			if transactional && got < n {
				return 0, 0, true
			}
			if got == 0 {
				return head, 0, true
			}
			newPacked := packHTS(head+got, tail)
			if r.cons.hts.CompareAndSwapAcqRel(packed, newPacked) {
				return head, got, true
			}
			sw.Once()
		}
	default:
		return 0, 0, false
	}
}

func (r *Ring[T]) publishConsumer(base, n uint32) {
	switch r.consMode {
	case ST:
		r.cons.tail.StoreRelease(base + n)
	case MT:
		r.cons.tail.StoreRelease(base + n)
	case MTHTS:
		r.cons.hts.StoreRelease(packHTS(base+n, base+n))
	}
}
