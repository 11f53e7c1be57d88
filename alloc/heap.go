// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// HeapAllocator serves regions from the Go heap.
type HeapAllocator struct{}

// Allocate returns a zeroed region of size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument,
			"allocation size must be at least 1").WithContext("size", size)
	}
	return make([]byte, size), nil
}

// Deallocate drops the region reference.
// fallback: GC handles memory
func (HeapAllocator) Deallocate(buf []byte) {}

var (
	defaultOnce  sync.Once
	defaultAlloc api.RawAllocator
)

// Default returns a process-wide heap allocator so pools that do not care
// about the byte source share one instance.
func Default() api.RawAllocator {
	defaultOnce.Do(func() {
		defaultAlloc = HeapAllocator{}
	})
	return defaultAlloc
}
