// Package alloc
// Author: momentics <momentics@gmail.com>
//
// RawAllocator implementations for hioload-mem.
// Heap-backed allocation for the common case, mmap-backed anonymous
// mappings on Linux, plus counting and budget wrappers for accounting
// and deterministic exhaustion in tests.
// All allocators here are safe for concurrent use so one instance can
// back several pools.
package alloc
