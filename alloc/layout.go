package alloc

import "unsafe"

// header sits immediately before every payload.
//
// While the block is live, size is the logical size reported to the caller
// and link keeps the physical payload capacity. Once released, size takes the
// capacity and link the address of the next free header.
type header struct {
	size uintptr
	link uintptr
}

// HeaderSize is the distance from a header to its payload.
const HeaderSize = unsafe.Sizeof(header{})

// All address arithmetic across the header/payload boundary goes through
// headerOf and payloadOf.

func headerOf(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(ptr) - HeaderSize))
}

func payloadOf(h *header) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + HeaderSize)
}

func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

func addrOf(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// pad rounds size up to a double word multiple.
func pad(size uintptr) uintptr {
	return (size + DoubleWordSize - 1) &^ (DoubleWordSize - 1)
}

// maxRequest is the largest size pad can round without wrapping.
const maxRequest = ^uintptr(0) - DoubleWordSize - HeaderSize

// capacity is the fixed payload storage behind the header.
func (h *header) capacity(live bool) uintptr {
	if live {
		return h.link
	}
	return h.size
}

// release turns a live header into a free one linked in front of next.
func (h *header) release(next uintptr) {
	h.size = h.link
	h.link = next
}

// acquire turns a free header into a live one of the given logical size.
func (h *header) acquire(size uintptr) {
	h.link = h.size
	h.size = size
}
