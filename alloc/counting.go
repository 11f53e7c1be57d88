// File: alloc/counting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// CountingStats is a snapshot of a CountingAllocator.
type CountingStats struct {
	AllocCalls uint64
	FreeCalls  uint64
	LiveBytes  uint64
	TotalBytes uint64
}

// CountingAllocator wraps another RawAllocator and tracks call and byte
// counts. Errors from the inner allocator pass through uncounted.
type CountingAllocator struct {
	mu    sync.Mutex
	inner api.RawAllocator
	stats CountingStats
}

// NewCountingAllocator wraps inner with byte accounting.
func NewCountingAllocator(inner api.RawAllocator) *CountingAllocator {
	return &CountingAllocator{inner: inner}
}

func (a *CountingAllocator) Allocate(size int) ([]byte, error) {
	buf, err := a.inner.Allocate(size)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.stats.AllocCalls++
	a.stats.LiveBytes += uint64(len(buf))
	a.stats.TotalBytes += uint64(len(buf))
	a.mu.Unlock()
	return buf, nil
}

func (a *CountingAllocator) Deallocate(buf []byte) {
	a.mu.Lock()
	a.stats.FreeCalls++
	a.stats.LiveBytes -= uint64(len(buf))
	a.mu.Unlock()
	a.inner.Deallocate(buf)
}

// Stats returns a snapshot of the counters.
func (a *CountingAllocator) Stats() CountingStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
