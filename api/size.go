// File: api/size.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "unsafe"

// PtrSize is the pointer word size all item slots are padded to.
const PtrSize = unsafe.Sizeof(uintptr(0))

// PadToPointer rounds size up to the next multiple of the pointer word.
func PadToPointer(size uintptr) uintptr {
	return (size + PtrSize - 1) / PtrSize * PtrSize
}

// ItemSlotSize returns the padded slot size for a value of size bytes.
// Zero-sized values still occupy one pointer word so every slot has a
// distinct address.
func ItemSlotSize(size uintptr) uintptr {
	if size == 0 {
		size = 1
	}
	return PadToPointer(size)
}
