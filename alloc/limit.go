// File: alloc/limit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// LimitAllocator wraps another RawAllocator with a live-byte budget.
// Requests that would exceed the budget fail with an allocation-failure
// error, which gives callers and tests a deterministic exhaustion path.
type LimitAllocator struct {
	mu     sync.Mutex
	inner  api.RawAllocator
	budget int
	live   int
}

// NewLimitAllocator wraps inner with a budget of live bytes.
func NewLimitAllocator(inner api.RawAllocator, budget int) *LimitAllocator {
	return &LimitAllocator{inner: inner, budget: budget}
}

func (a *LimitAllocator) Allocate(size int) ([]byte, error) {
	a.mu.Lock()
	if size > 0 && a.live+size > a.budget {
		live := a.live
		a.mu.Unlock()
		return nil, api.NewError(api.ErrCodeAllocationFailure, api.ErrAllocationFailure,
			"byte budget exceeded").
			WithContext("size", size).
			WithContext("live", live).
			WithContext("budget", a.budget)
	}
	a.mu.Unlock()

	buf, err := a.inner.Allocate(size)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.live += len(buf)
	a.mu.Unlock()
	return buf, nil
}

func (a *LimitAllocator) Deallocate(buf []byte) {
	a.mu.Lock()
	a.live -= len(buf)
	a.mu.Unlock()
	a.inner.Deallocate(buf)
}

// LiveBytes reports the bytes currently counted against the budget.
func (a *LimitAllocator) LiveBytes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}
