package alloc

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

// Size reports the logical size of the live block at ptr.
func (h *Heap) Size(ptr unsafe.Pointer) uintptr {
	if ptr == nil {
		return 0
	}
	return headerOf(ptr).size
}

// Bytes returns the live block at ptr as a byte slice of its logical size.
// The slice is only valid until the block is released.
func (h *Heap) Bytes(ptr unsafe.Pointer) []byte {
	if ptr == nil {
		return nil
	}
	return bytesAt(ptr, headerOf(ptr).size)
}

// Get points the typed pointer behind ptr at the payload at ref:
//
//	var xs *[100]int32
//	h.Get(p, &xs)
func (h *Heap) Get(ref unsafe.Pointer, ptr interface{}) {
	*(*unsafe.Pointer)(reflect2.PtrOf(ptr)) = ref
}
