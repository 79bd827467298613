// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/sqkio/internal/assert"

// Guard binds a Ring to a single logical owner (a task or a
// scheduler) and guarantees Close runs exactly once, so a consumer
// can release the underlying ring deterministically instead of
// relying on GC.
//
// Go has no move constructors, so Guard emulates move-only ownership
// with Take: once Take has run, the guard is inert — Ring returns nil
// and Close is a no-op — and the caller holding the returned *Ring[T]
// is the ring's sole owner from that point on.
type Guard[T any] struct {
	r       *Ring[T]
	closed  bool
	taken   bool
	onClose func(*Ring[T])
}

// NewGuard wraps r. onClose, if non-nil, runs once when Close is
// called, letting the owner release any side resources (e.g. a
// scheduler deregistering the ring from its poll set).
func NewGuard[T any](r *Ring[T], onClose func(*Ring[T])) *Guard[T] {
	return &Guard[T]{r: r, onClose: onClose}
}

// Ring returns the guarded Ring, or nil once Take has run. Calling any
// method on it after Close is a caller error; Guard does not re-check
// closed on every access, since ring lifetime is owned by a single
// goroutine.
func (g *Guard[T]) Ring() *Ring[T] { return g.r }

// Take transfers ownership of the guarded Ring to the caller and
// leaves g inert: subsequent Ring calls return nil and Close becomes
// a no-op, since ownership — and the responsibility to eventually
// release it — now belongs to whoever holds the returned value.
// Returns nil if the guard was already closed or already taken.
func (g *Guard[T]) Take() *Ring[T] {
	if g.closed || g.taken {
		return nil
	}
	g.taken = true
	r := g.r
	g.r = nil
	return r
}

// Close releases the guard. Calling Close more than once, or calling
// it after Take, is a no-op in release builds; a debug build
// (-tags sqkio_debug) panics instead, since both are a protocol
// misuse (destroy after move / double-destroy).
func (g *Guard[T]) Close() {
	if g.closed || g.taken {
		assert.That(false, "ring: Guard closed or taken more than once")
		return
	}
	g.closed = true
	if g.onClose != nil {
		g.onClose(g.r)
	}
}

// Closed reports whether Close or Take has already run.
func (g *Guard[T]) Closed() bool { return g.closed || g.taken }
