// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"code.hybscloud.com/sqkio/internal/kerr"
	"code.hybscloud.com/sqkio/ring"
)

func TestSTSTBasic(t *testing.T) {
	r, err := ring.New[int](3, ring.ST, ring.ST)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", r.Cap())
	}

	for i := range 3 {
		if !r.EnqueueOne(i + 100) {
			t.Fatalf("EnqueueOne(%d) failed", i)
		}
	}
	if r.EnqueueOne(999) {
		t.Fatalf("EnqueueOne on full ring should fail")
	}

	for i := range 3 {
		v, ok := r.DequeueOne()
		if !ok {
			t.Fatalf("DequeueOne(%d) failed", i)
		}
		if v != i+100 {
			t.Fatalf("DequeueOne(%d): got %d, want %d", i, v, i+100)
		}
	}
	if _, ok := r.DequeueOne(); ok {
		t.Fatalf("DequeueOne on empty ring should fail")
	}
}

func TestMTRTSRejected(t *testing.T) {
	if _, err := ring.New[int](4, ring.MTRTS, ring.ST); !errors.Is(err, kerr.ErrSyncModeUnsupported) {
		t.Fatalf("New with MTRTS producer: got %v, want ErrSyncModeUnsupported", err)
	}
	if _, err := ring.New[int](4, ring.ST, ring.MTRTS); !errors.Is(err, kerr.ErrSyncModeUnsupported) {
		t.Fatalf("New with MTRTS consumer: got %v, want ErrSyncModeUnsupported", err)
	}
}

func TestCapacityRounding(t *testing.T) {
	cases := []struct{ requested, wantCap int }{
		{0, 1},
		{1, 1},
		{2, 3},
		{3, 3},
		{10, 15},
		{15, 15},
		{16, 31},
	}
	for _, c := range cases {
		r, err := ring.New[int](c.requested, ring.ST, ring.ST)
		if err != nil {
			t.Fatalf("New(%d): %v", c.requested, err)
		}
		if r.Cap() != c.wantCap {
			t.Fatalf("New(%d).Cap(): got %d, want %d", c.requested, r.Cap(), c.wantCap)
		}
	}
}

func TestZeroLengthOpsAreNoop(t *testing.T) {
	r, _ := ring.New[int](3, ring.ST, ring.ST)
	n, err := r.Enqueue(false)
	if n != 0 || err != nil {
		t.Fatalf("Enqueue(no vals): got (%d, %v), want (0, nil)", n, err)
	}
	n, err = r.Dequeue(false, nil)
	if n != 0 || err != nil {
		t.Fatalf("Dequeue(nil out): got (%d, %v), want (0, nil)", n, err)
	}
}

func TestTransactionalAllOrNothing(t *testing.T) {
	r, _ := ring.New[int](3, ring.MT, ring.ST)
	if n, err := r.Enqueue(true, 1, 2, 3); err != nil || n != 3 {
		t.Fatalf("Enqueue(3 of 3): got (%d, %v)", n, err)
	}
	n, err := r.Enqueue(false, 4)
	if !errors.Is(err, kerr.ErrWouldBlock) {
		t.Fatalf("Enqueue past capacity: got (%d, %v), want ErrWouldBlock", n, err)
	}

	out := make([]int, 2)
	if n, err := r.Dequeue(true, out); err != nil || n != 2 {
		t.Fatalf("Dequeue(2): got (%d, %v)", n, err)
	}
	if out[0] != 1 || out[1] != 2 {
		t.Fatalf("Dequeue order: got %v, want [1 2]", out)
	}

	// Transactional dequeue of 2 when only 1 remains must fail entirely.
	out2 := make([]int, 2)
	n, err = r.Dequeue(true, out2)
	if !errors.Is(err, kerr.ErrWouldBlock) || n != 0 {
		t.Fatalf("transactional Dequeue(2) with 1 live: got (%d, %v), want (0, ErrWouldBlock)", n, err)
	}
}

func TestWrapAround(t *testing.T) {
	r, _ := ring.New[uint32](3, ring.ST, ring.ST)
	for round := 0; round < 2*4; round++ {
		if !r.EnqueueOne(uint32(round)) {
			t.Fatalf("round %d: EnqueueOne failed", round)
		}
		v, ok := r.DequeueOne()
		if !ok || v != uint32(round) {
			t.Fatalf("round %d: DequeueOne got (%d, %v), want %d", round, v, ok, round)
		}
	}
}

func testPingPong(t *testing.T, prod, cons ring.SyncMode) {
	t.Helper()
	r, err := ring.New[uint32](10, prod, cons)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const iterations = 100_000
	for i := uint32(0); i < iterations; i++ {
		if !r.EnqueueOne(i) {
			t.Fatalf("iteration %d: EnqueueOne failed", i)
		}
		v, ok := r.DequeueOne()
		if !ok || v != i {
			t.Fatalf("iteration %d: got (%d, %v), want %d", i, v, ok, i)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("Len after draining: got %d, want 0", r.Len())
	}
}

func TestPingPongAllModes(t *testing.T) {
	modes := []ring.SyncMode{ring.ST, ring.MT, ring.MTHTS}
	for _, p := range modes {
		for _, c := range modes {
			p, c := p, c
			t.Run(p.String()+"_"+c.String(), func(t *testing.T) {
				testPingPong(t, p, c)
			})
		}
	}
}

func TestMPSCLinearizability(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skipped under race detector")
	}
	const numProducers = 4
	const itemsPerProducer = 100_000

	r, _ := ring.New[uint64](1023, ring.MT, ring.ST)

	var wg sync.WaitGroup
	wg.Add(numProducers)
	for p := 0; p < numProducers; p++ {
		p := uint64(p)
		go func() {
			defer wg.Done()
			for i := uint64(0); i < itemsPerProducer; i++ {
				v := p*1_000_000 + i
				for !r.EnqueueOne(v) {
					// ring momentarily full; retry
				}
			}
		}()
	}

	got := make([]uint64, 0, numProducers*itemsPerProducer)
	want := make([]uint64, 0, numProducers*itemsPerProducer)
	for p := uint64(0); p < numProducers; p++ {
		for i := uint64(0); i < itemsPerProducer; i++ {
			want = append(want, p*1_000_000+i)
		}
	}
	for len(got) < numProducers*itemsPerProducer {
		if v, ok := r.DequeueOne(); ok {
			got = append(got, v)
		}
	}
	wg.Wait()

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if len(got) != len(want) {
		t.Fatalf("count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func ExampleRing_singleThread() {
	r, err := ring.New[string](3, ring.ST, ring.ST)
	if err != nil {
		panic(err)
	}
	r.EnqueueOne("a")
	r.EnqueueOne("b")
	v, _ := r.DequeueOne()
	fmt.Println(v)
	// Output: a
}
