//go:build !linux
// +build !linux

// File: alloc/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap fallback for platforms without the mmap-backed allocator.

package alloc

// MmapAllocator falls back to heap allocation on this platform.
type MmapAllocator struct {
	heap HeapAllocator
}

// NewMmapAllocator creates the fallback allocator.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{}
}

func (a *MmapAllocator) Allocate(size int) ([]byte, error) {
	return a.heap.Allocate(size)
}

func (a *MmapAllocator) Deallocate(buf []byte) {
	a.heap.Deallocate(buf)
}

// MappedRegions always reports zero on the fallback path.
func (a *MmapAllocator) MappedRegions() int { return 0 }
