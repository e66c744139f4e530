package alloc

import (
	"math/bits"
	"unsafe"
)

// Calloc allocates count*size zeroed bytes. It returns nil when the product
// overflows.
func (h *Heap) Calloc(count, size uintptr) unsafe.Pointer {
	hi, total := bits.Mul64(uint64(count), uint64(size))
	if hi != 0 || uint64(uintptr(total)) != total {
		h.Init()
		h.stats.failures++
		return nil
	}
	ptr := h.Alloc(uintptr(total))
	if ptr != nil {
		clear(bytesAt(ptr, uintptr(total)))
	}
	return ptr
}

// Realloc resizes the block at ptr. Shrinking only updates the recorded
// size. Growing moves the content to a new block and frees the old one; if
// that allocation fails, nil is returned and ptr stays live and untouched.
func (h *Heap) Realloc(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	if ptr == nil {
		return h.Alloc(size)
	}
	if size == 0 {
		h.Dealloc(ptr)
		return nil
	}

	b := headerOf(ptr)
	if size <= b.size {
		b.size = size
		return ptr
	}

	moved := h.Alloc(size)
	if moved == nil {
		return nil
	}
	copy(bytesAt(moved, b.size), bytesAt(ptr, b.size))
	h.Dealloc(ptr)
	return moved
}

func bytesAt(ptr unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), n)
}
