// File: alloc/alloc_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-mem/alloc"
	"github.com/momentics/hioload-mem/api"
)

func TestHeapAllocator(t *testing.T) {
	var h alloc.HeapAllocator

	buf, err := h.Allocate(64)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(buf) != 64 {
		t.Errorf("len = %d, want 64", len(buf))
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	h.Deallocate(buf)

	if _, err := h.Allocate(0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Allocate(0) = %v, want ErrInvalidArgument", err)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if alloc.Default() != alloc.Default() {
		t.Error("Default() returns distinct allocators")
	}
}

func TestCountingAllocator(t *testing.T) {
	c := alloc.NewCountingAllocator(alloc.HeapAllocator{})

	a, _ := c.Allocate(100)
	b, _ := c.Allocate(50)
	s := c.Stats()
	if s.AllocCalls != 2 || s.LiveBytes != 150 || s.TotalBytes != 150 {
		t.Errorf("after allocs: %+v", s)
	}

	c.Deallocate(a)
	s = c.Stats()
	if s.FreeCalls != 1 || s.LiveBytes != 50 {
		t.Errorf("after free: %+v", s)
	}
	c.Deallocate(b)
	if got := c.Stats().LiveBytes; got != 0 {
		t.Errorf("LiveBytes = %d, want 0", got)
	}

	// Inner failures are not counted.
	if _, err := c.Allocate(-1); err == nil {
		t.Error("Allocate(-1) succeeded")
	}
	if got := c.Stats().AllocCalls; got != 2 {
		t.Errorf("failed allocation counted: %d", got)
	}
}

func TestLimitAllocator(t *testing.T) {
	l := alloc.NewLimitAllocator(alloc.HeapAllocator{}, 100)

	a, err := l.Allocate(80)
	if err != nil {
		t.Fatalf("Allocate(80): %v", err)
	}
	if _, err := l.Allocate(40); !errors.Is(err, api.ErrAllocationFailure) {
		t.Errorf("over-budget = %v, want ErrAllocationFailure", err)
	}
	l.Deallocate(a)
	if got := l.LiveBytes(); got != 0 {
		t.Errorf("LiveBytes = %d, want 0", got)
	}
	if _, err := l.Allocate(100); err != nil {
		t.Errorf("Allocate after release: %v", err)
	}
}

func TestMmapAllocator(t *testing.T) {
	m := alloc.NewMmapAllocator()

	buf, err := m.Allocate(4096 + 123)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(buf) != 4096+123 {
		t.Errorf("len = %d", len(buf))
	}
	for i := range buf {
		buf[i] = 0x5C
	}
	m.Deallocate(buf)
	if got := m.MappedRegions(); got != 0 {
		t.Errorf("MappedRegions = %d after Deallocate, want 0", got)
	}

	if _, err := m.Allocate(0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Allocate(0) = %v, want ErrInvalidArgument", err)
	}
}
