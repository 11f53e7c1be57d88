//go:build linux
// +build linux

// File: alloc/mmap_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux mmap-backed allocator using anonymous private mappings.

package alloc

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-mem/api"
)

// MmapAllocator obtains regions straight from the kernel, bypassing the
// Go heap. Useful for large slabs that should not add GC scan pressure.
type MmapAllocator struct {
	mu       sync.Mutex
	mappings map[*byte][]byte // requested-region base -> full mapping
}

// NewMmapAllocator creates an mmap-backed RawAllocator.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{
		mappings: make(map[*byte][]byte),
	}
}

// Allocate maps a page-rounded anonymous region and returns its first
// size bytes.
func (a *MmapAllocator) Allocate(size int) ([]byte, error) {
	if size < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument,
			"allocation size must be at least 1").WithContext("size", size)
	}
	length := pageAlign(size)
	mapping, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailure, api.ErrAllocationFailure,
			"mmap failed").WithContext("size", size).WithContext("errno", err)
	}
	buf := mapping[:size:size]
	a.mu.Lock()
	a.mappings[&mapping[0]] = mapping
	a.mu.Unlock()
	return buf, nil
}

// Deallocate unmaps a region previously returned by Allocate. Unknown
// regions are ignored.
func (a *MmapAllocator) Deallocate(buf []byte) {
	if len(buf) == 0 {
		return
	}
	base := &buf[0]
	a.mu.Lock()
	mapping, ok := a.mappings[base]
	if ok {
		delete(a.mappings, base)
	}
	a.mu.Unlock()
	if ok {
		_ = unix.Munmap(mapping)
	}
}

// MappedRegions reports the number of live mappings.
func (a *MmapAllocator) MappedRegions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mappings)
}

func pageAlign(size int) int {
	page := unix.Getpagesize()
	return (size + page - 1) / page * page
}
