// File: pool/objectpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ObjectPool: growable fixed-type pool over a chain of slab nodes.

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-mem/alloc"
	"github.com/momentics/hioload-mem/api"
)

// Default pool geometry.
const (
	DefaultInitialCapacity = 32
	DefaultMaxNodeCapacity = 1_000_000
)

type config struct {
	initialCapacity int
	maxNodeCapacity int
	allocator       api.RawAllocator
}

// Option configures a pool at construction time.
type Option func(*config)

// WithInitialCapacity sets the slot count of the initial node.
func WithInitialCapacity(n int) Option {
	return func(c *config) { c.initialCapacity = n }
}

// WithMaxNodeCapacity caps the slot count any node may grow to.
func WithMaxNodeCapacity(n int) Option {
	return func(c *config) { c.maxNodeCapacity = n }
}

// WithAllocator selects the RawAllocator backing the pool's slabs.
func WithAllocator(a api.RawAllocator) Option {
	return func(c *config) { c.allocator = a }
}

// noCopy triggers go vet's copylocks check when a pool is copied by
// value. A pool exclusively owns its node chain, so it must only ever be
// handed around as a pointer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ObjectPool hands out slots of one fixed item size from a chain of slab
// nodes. Construction and destruction of slot contents go through the
// CtorDtor policy given at construction.
//
// The chain always holds at least one node while the pool is open. The
// tail pointer is a non-owning back-reference kept consistent on every
// structural mutation.
type ObjectPool[T any] struct {
	noCopy noCopy

	ctor      api.CtorDtor[T]
	allocator api.RawAllocator

	first *node
	last  *node // non-owning, never nil while open
	max   int

	totalAllocations uint64
	totalDestroyed   uint64
	currentlyAlive   uint64

	closed bool
}

// New creates a pool whose slots are built and torn down by ctor.
func New[T any](ctor api.CtorDtor[T], opts ...Option) (*ObjectPool[T], error) {
	cfg := config{
		initialCapacity: DefaultInitialCapacity,
		maxNodeCapacity: DefaultMaxNodeCapacity,
		allocator:       alloc.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initialCapacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity,
			"initial capacity must be at least 1").
			WithContext("initialCapacity", cfg.initialCapacity)
	}
	if cfg.maxNodeCapacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity,
			"max node capacity must be at least 1").
			WithContext("maxNodeCapacity", cfg.maxNodeCapacity)
	}
	first, err := newNode(cfg.allocator, cfg.initialCapacity, ctor.ItemSize())
	if err != nil {
		return nil, err
	}
	return &ObjectPool[T]{
		ctor:      ctor,
		allocator: cfg.allocator,
		first:     first,
		last:      first,
		max:       cfg.maxNodeCapacity,
	}, nil
}

// NewDefault creates a pool of plain T values.
func NewDefault[T any](opts ...Option) (*ObjectPool[T], error) {
	return New[T](DefaultCtorDtor[T]{}, opts...)
}

// Create acquires a free slot and default-constructs a T in it.
func (p *ObjectPool[T]) Create() (*T, error) {
	slot, err := p.acquireSlot()
	if err != nil {
		return nil, err
	}
	return p.ctor.Initialize(slot), nil
}

// CreateFrom acquires a free slot and constructs a T in it from v.
func (p *ObjectPool[T]) CreateFrom(v T) (*T, error) {
	slot, err := p.acquireSlot()
	if err != nil {
		return nil, err
	}
	return p.ctor.Create(slot, v), nil
}

// GetSlotWithoutInitializing returns a raw, uninitialized slot address for
// callers that construct in place themselves:
//
//	slot, err := p.GetSlotWithoutInitializing()
//	obj := (*T)(slot)
//	*obj = T{ ... }
//
// The slot is accounted exactly like Create and must eventually be handed
// back through Destroy.
func (p *ObjectPool[T]) GetSlotWithoutInitializing() (unsafe.Pointer, error) {
	return p.acquireSlot()
}

// Destroy tears obj down through the policy and returns its slot to
// circulation. When the owning node empties and at least one other node
// remains, the node is unlinked and its slab returned to the allocator.
// The sole remaining node is never retired, so a later Create always has
// a node to probe.
func (p *ObjectPool[T]) Destroy(obj *T) error {
	if p.closed {
		return api.ErrPoolClosed
	}
	if obj == nil {
		return api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument,
			"destroy of nil object")
	}
	slot := p.ctor.Destroy(obj)
	prev, owner := p.findNode(slot)
	if owner == nil {
		return api.NewError(api.ErrCodeInvalidArgument, api.ErrForeignPointer,
			"destroy of unpooled address").WithContext("addr", uintptr(slot))
	}
	if err := owner.release(slot); err != nil {
		return err
	}
	p.totalDestroyed++
	p.currentlyAlive--

	if owner.isEmpty() && !(p.first == owner && owner.next == nil) {
		p.retire(prev, owner)
	}
	return nil
}

// Close releases every slab back to the allocator and shuts the pool.
// Live objects are abandoned without destructor calls. Closing twice is
// a no-op.
func (p *ObjectPool[T]) Close() error {
	if p.closed {
		return nil
	}
	// Iterative walk; the chain can be long and need not be dropped
	// recursively.
	for n := p.first; n != nil; {
		next := n.next
		n.next = nil
		n.free(p.allocator)
		n = next
	}
	p.first = nil
	p.last = nil
	p.closed = true
	return nil
}

func (p *ObjectPool[T]) acquireSlot() (unsafe.Pointer, error) {
	if p.closed {
		return nil, api.ErrPoolClosed
	}
	// First node with spare capacity wins.
	n := p.first
	for n != nil && !n.hasSlots() {
		n = n.next
	}
	if n == nil {
		grown, err := p.appendNode()
		if err != nil {
			return nil, err
		}
		n = grown
	}
	addr := n.acquire()
	p.totalAllocations++
	p.currentlyAlive++
	return addr, nil
}

// nextCapacity grows the tail capacity by half, never by less than one,
// clamped to the configured ceiling. Arithmetic wrap is a fatal overflow
// condition, not a silent clamp.
func (p *ObjectPool[T]) nextCapacity() (int, error) {
	last := p.last.capacity
	if last >= p.max {
		return p.max, nil
	}
	grown := last + last/2
	if grown < last {
		return 0, api.NewError(api.ErrCodeOverflow, api.ErrCapacityOverflow,
			"capacity became too big").WithContext("lastCapacity", last)
	}
	if grown == last {
		grown = last + 1
	}
	if grown >= p.max {
		grown = p.max
	}
	return grown, nil
}

// appendNode links a fresh tail node. On failure nothing is linked, so
// the chain stays consistent.
func (p *ObjectPool[T]) appendNode() (*node, error) {
	capacity, err := p.nextCapacity()
	if err != nil {
		return nil, err
	}
	n, err := newNode(p.allocator, capacity, p.ctor.ItemSize())
	if err != nil {
		return nil, err
	}
	p.last.next = n
	p.last = n
	return n, nil
}

func (p *ObjectPool[T]) findNode(addr unsafe.Pointer) (prev, owner *node) {
	for n := p.first; n != nil; n = n.next {
		if n.contains(addr) {
			return prev, n
		}
		prev = n
	}
	return nil, nil
}

// retire unlinks owner from the chain, repairing the predecessor link and
// the head/tail pointers, and hands its slab back to the allocator.
func (p *ObjectPool[T]) retire(prev, owner *node) {
	next := owner.next
	owner.next = nil
	if prev != nil {
		prev.next = next
	}
	if p.first == owner {
		p.first = next
	}
	if p.last == owner {
		p.last = prev
	}
	owner.free(p.allocator)
}
