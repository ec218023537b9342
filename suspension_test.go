// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/rkbel"
)

func TestSuspensionMemoizesValue(t *testing.T) {
	var calls int32
	s := rkbel.NewSuspension(func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})

	for i := 0; i < 5; i++ {
		v, err := s.Force()
		if err != nil || v != 42 {
			t.Fatalf("Force() = %d, %v; want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("compute ran %d times, want 1", calls)
	}
}

func TestSuspensionCrashSticky(t *testing.T) {
	sentinel := errors.New("boom")
	var calls int32
	s := rkbel.NewSuspension(func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, sentinel
	})

	_, err1 := s.Force()
	_, err2 := s.Force()
	if !errors.Is(err1, sentinel) || !errors.Is(err2, sentinel) {
		t.Fatalf("expected sentinel error on both forces, got %v, %v", err1, err2)
	}
	if calls != 1 {
		t.Fatalf("compute ran %d times after failure, want 1", calls)
	}
}

func TestSuspensionConcurrentForce(t *testing.T) {
	var calls int32
	s := rkbel.NewSuspension(func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 7, nil
	})

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			v, err := s.Force()
			if err != nil || v != 7 {
				t.Errorf("Force() = %d, %v; want 7, nil", v, err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("compute ran %d times under contention, want 1", calls)
	}
}

func TestSuspensionRealizedDoesNotCompute(t *testing.T) {
	s := rkbel.NewRealized(99)
	if !s.IsForced() {
		t.Fatal("NewRealized should already be forced")
	}
	v, err := s.Force()
	if err != nil || v != 99 {
		t.Fatalf("Force() = %d, %v; want 99, nil", v, err)
	}
}

func TestSuspensionIsForced(t *testing.T) {
	s := rkbel.NewSuspension(func() (int, error) { return 1, nil })
	if s.IsForced() {
		t.Fatal("fresh suspension must not report forced")
	}
	_, _ = s.Force()
	if !s.IsForced() {
		t.Fatal("suspension must report forced after Force")
	}
}
