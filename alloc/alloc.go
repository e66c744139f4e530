package alloc

import "unsafe"

const (
	WordSize       = unsafe.Sizeof(uintptr(0))
	DoubleWordSize = 2 * WordSize

	KB = 1 << 10
	MB = 1 << 20
	GB = 1 << 30

	// HeapSize is the address space reserved for a heap unless told otherwise.
	HeapSize = 2 * GB
)

// Allocator is the dynamic memory API a Heap stands in for.
type Allocator interface {
	Alloc(size uintptr) unsafe.Pointer
	Dealloc(ptr unsafe.Pointer)
	Calloc(count, size uintptr) unsafe.Pointer
	Realloc(ptr unsafe.Pointer, size uintptr) unsafe.Pointer
}

var _ Allocator = (*Heap)(nil)

// Default is the process wide heap behind Malloc, Free, Calloc and Realloc.
var Default = NewHeap(HeapSize, Stdout)

func Malloc(size uintptr) unsafe.Pointer {
	return Default.Alloc(size)
}

func Free(ptr unsafe.Pointer) {
	Default.Dealloc(ptr)
}

func Calloc(count, size uintptr) unsafe.Pointer {
	return Default.Calloc(count, size)
}

func Realloc(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	return Default.Realloc(ptr, size)
}
