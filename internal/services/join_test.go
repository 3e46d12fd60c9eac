package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunAll_SingleFn(t *testing.T) {
	want := errors.New("boom")
	got := runAll(context.Background(), func(context.Context) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if err := runAll(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

// The lowest-indexed failure must win even when a later fn fails first in
// wall-clock time.
func TestRunAll_LowestIndexWinsDeterministically(t *testing.T) {
	errSlow := errors.New("slow check failed")
	errFast := errors.New("fast op failed")

	slow := func(context.Context) error {
		time.Sleep(30 * time.Millisecond)
		return errSlow
	}
	fast := func(context.Context) error { return errFast }

	for i := 0; i < 5; i++ {
		if got := runAll(context.Background(), slow, fast); !errors.Is(got, errSlow) {
			t.Fatalf("run %d: expected slow (index 0) error, got %v", i, got)
		}
	}
}

// All fns must run to completion before the aggregate outcome resolves, even
// when one has already failed.
func TestRunAll_AllSettle(t *testing.T) {
	var done int32
	fail := func(context.Context) error { return errors.New("early failure") }
	slow := func(context.Context) error {
		time.Sleep(20 * time.Millisecond)
		atomic.StoreInt32(&done, 1)
		return nil
	}

	if err := runAll(context.Background(), fail, slow); err == nil {
		t.Fatalf("expected error")
	}
	if atomic.LoadInt32(&done) != 1 {
		t.Fatalf("slow fn had not settled when runAll returned")
	}
}

func TestRunAll_AllSucceed(t *testing.T) {
	var n int32
	inc := func(context.Context) error {
		atomic.AddInt32(&n, 1)
		return nil
	}
	if err := runAll(context.Background(), inc, inc, inc); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if n != 3 {
		t.Fatalf("expected all fns to run, n = %d", n)
	}
}
