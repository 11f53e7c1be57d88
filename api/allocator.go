// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw byte allocation capability consumed by every pool.

package api

// RawAllocator supplies and reclaims contiguous byte regions.
//
// Implementations may be heap-, mmap- or device-backed. Regions returned
// by Allocate are pointer-aligned; every item size handed to an allocator
// is pre-padded to pointer alignment, so no further alignment parameter
// exists.
type RawAllocator interface {
	// Allocate returns a region of exactly size bytes, or an error when
	// the underlying source cannot supply it.
	Allocate(size int) ([]byte, error)

	// Deallocate returns a region previously obtained from Allocate on
	// the same allocator. The region must not be used afterwards.
	Deallocate(buf []byte)
}
