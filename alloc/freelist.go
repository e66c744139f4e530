package alloc

// freeList is a singly linked list of released blocks, most recently
// released first.
type freeList struct {
	head uintptr
}

func (l *freeList) push(h *header) {
	h.release(l.head)
	l.head = addrOf(h)
}

// take unlinks and returns the first block with capacity for size bytes,
// or nil if none fits.
func (l *freeList) take(size uintptr) *header {
	var prev *header
	for addr := l.head; addr != 0; {
		h := headerAt(addr)
		if h.capacity(false) >= size {
			if prev == nil {
				l.head = h.link
			} else {
				prev.link = h.link
			}
			return h
		}
		prev = h
		addr = h.link
	}
	return nil
}

func (l *freeList) each(f func(h *header)) {
	for addr := l.head; addr != 0; {
		h := headerAt(addr)
		addr = h.link
		f(h)
	}
}
