package alloc

import (
	"unsafe"
)

// Heap is a recency ordered, first fit free list allocator over one
// reserved address range. Blocks are never split, merged or returned to the
// operating system.
//
// A Heap is not safe for concurrent use.
type Heap struct {
	size  uintptr
	trace Tracer
	region
	free  freeList
	stats counters
}

// NewHeap returns a heap that reserves size bytes on first use. Nothing is
// mapped until then.
func NewHeap(size uintptr, trace Tracer) *Heap {
	return &Heap{size: size, trace: trace}
}

// Init reserves the region if it has not been reserved yet. A failed
// reservation terminates the process.
func (h *Heap) Init() {
	if h.ready() {
		return
	}
	if err := h.region.init(h.size); err != nil {
		fatalf("alloc: mmap failed: %v", err)
		return
	}
	h.trace.banner()
}

// Alloc returns size writable bytes, or nil when size is 0 or the region
// is exhausted.
func (h *Heap) Alloc(size uintptr) unsafe.Pointer {
	h.trace.call("alloc", size)
	h.Init()

	if size == 0 {
		return nil
	}

	if b := h.free.take(size); b != nil {
		b.acquire(size)
		h.stats.reuses++
		h.stats.live++
		return payloadOf(b)
	}

	if size > maxRequest {
		h.stats.failures++
		return nil
	}
	capacity := pad(size)
	at := h.carve(capacity + HeaderSize)
	if at == 0 {
		h.stats.failures++
		return nil
	}
	b := headerAt(at)
	b.size = size
	b.link = capacity
	h.stats.carves++
	h.stats.live++
	return payloadOf(b)
}

// Dealloc puts the block back at the front of the free list. The block is
// neither cleared nor merged with its neighbours.
func (h *Heap) Dealloc(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	h.free.push(headerOf(ptr))
	h.stats.frees++
	h.stats.live--
}
