// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/sqkio/sched"
	"code.hybscloud.com/sqkio/task"
	"code.hybscloud.com/sqkio/wake"
)

func TestWithTraceObservesEvents(t *testing.T) {
	var mu sync.Mutex
	var events []sched.Event
	s, err := sched.New(8, sched.WithTrace(func(e sched.Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tk := task.Go[int](s, func(c *task.Ctx) (int, error) {
		return 1, nil
	})
	s.Spawn(tk)

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not complete")
	}
	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	mu.Lock()
	defer mu.Unlock()
	var sawResume, sawStop bool
	for _, e := range events {
		switch e {
		case sched.EventResume:
			sawResume = true
		case sched.EventStop:
			sawStop = true
		}
	}
	if !sawResume || !sawStop {
		t.Fatalf("events: got %v, want resume and stop both present", events)
	}
}

func TestRunResumesSpawnedTask(t *testing.T) {
	s, err := sched.New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := make(chan int, 1)
	tk := task.Go[int](s, func(c *task.Ctx) (int, error) {
		return 99, nil
	})
	s.Spawn(tk)

	go s.Run()
	select {
	case <-tk.Done():
		v, _ := tk.Result()
		result <- v
	case <-time.After(time.Second):
		t.Fatal("task did not complete")
	}
	s.Stop()

	if v := <-result; v != 99 {
		t.Fatalf("Result: got %d, want 99", v)
	}
}

func TestRunWithWakerAndYieldPoint(t *testing.T) {
	s, err := sched.New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	go s.Run()
	defer s.Stop()

	w := wake.New[string](s)
	yp := wake.NewYieldPoint(s)

	tk := task.Go[string](s, func(c *task.Ctx) (string, error) {
		task.Await[struct{}](c, yp)
		return task.Await[string](c, w), nil
	})
	s.Spawn(tk)

	time.Sleep(10 * time.Millisecond)
	w.Wake("done")

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not complete")
	}
	v, err := tk.Result()
	if err != nil || v != "done" {
		t.Fatalf("Result: got (%q, %v), want (\"done\", nil)", v, err)
	}
}

func TestTakeReadyMovesQueuedHandles(t *testing.T) {
	s, err := sched.New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tk := task.Go[int](s, func(c *task.Ctx) (int, error) {
		return 42, nil
	})
	s.Spawn(tk)

	r := s.TakeReady()
	if r == nil {
		t.Fatal("TakeReady: got nil, want the ready ring")
	}
	if r := s.TakeReady(); r != nil {
		t.Fatal("second TakeReady: got non-nil, want nil (scheduler should be inert)")
	}

	s2 := sched.NewFromRing(r)
	go s2.Run()
	defer s2.Stop()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("task spawned on the original scheduler never ran on the successor")
	}
	v, _ := tk.Result()
	if v != 42 {
		t.Fatalf("Result: got %d, want 42", v)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := sched.New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Close()
	s.Close()
}

func TestStopAfterCurrentResume(t *testing.T) {
	s, err := sched.New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ran := make(chan struct{}, 1)
	tk := task.Go[int](s, func(c *task.Ctx) (int, error) {
		ran <- struct{}{}
		s.Stop()
		return 1, nil
	})
	s.Spawn(tk)

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
