// File: array/arraypool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool-of-arrays composition: the array construction policy plugged into
// an object pool.

package array

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/pool"
)

// ArrayPool hands out fixed-length (but run-time-chosen) arrays from a
// slab-backed object pool. Every slot is exactly
// ByteSizeForCount(itemCount) bytes; the inner pool only ever calls
// through the construction policy and never knows it manages arrays.
type ArrayPool[E any] struct {
	inner     *pool.ObjectPool[PreallocatedArray[E]]
	itemCount int
}

// NewArrayPool creates a pool of itemCount-element arrays. The usual
// pool options (initial capacity, growth ceiling, allocator) apply.
func NewArrayPool[E any](itemCount int, opts ...pool.Option) (*ArrayPool[E], error) {
	ctor, err := NewArrayCtorDtor[E](itemCount)
	if err != nil {
		return nil, err
	}
	inner, err := pool.New[PreallocatedArray[E]](ctor, opts...)
	if err != nil {
		return nil, err
	}
	return &ArrayPool[E]{inner: inner, itemCount: itemCount}, nil
}

// Create returns a zero-filled array of the pool's element count.
func (p *ArrayPool[E]) Create() (*PreallocatedArray[E], error) {
	return p.inner.Create()
}

// CreateFilled returns an array with every element set to v.
func (p *ArrayPool[E]) CreateFilled(v E) (*PreallocatedArray[E], error) {
	a, err := p.inner.Create()
	if err != nil {
		return nil, err
	}
	elems := a.Elements()
	for i := range elems {
		elems[i] = v
	}
	return a, nil
}

// Destroy destructs the array's elements and returns its backing bytes
// to circulation through the pool's normal node release path.
func (p *ArrayPool[E]) Destroy(a *PreallocatedArray[E]) error {
	return p.inner.Destroy(a)
}

// ItemCount is the fixed per-array element count.
func (p *ArrayPool[E]) ItemCount() int { return p.itemCount }

// ItemSize is the per-slot byte size, ByteSizeForCount(ItemCount()).
func (p *ArrayPool[E]) ItemSize() uintptr { return p.inner.ItemSize() }

// Stats snapshots the inner pool's accounting.
func (p *ArrayPool[E]) Stats() api.PoolStats { return p.inner.Stats() }

// Close releases the inner pool's slabs.
func (p *ArrayPool[E]) Close() error { return p.inner.Close() }
