package alloc

type counters struct {
	carves   uint64
	reuses   uint64
	failures uint64
	frees    uint64
	live     int64
}

// Stats is a snapshot of a heap's bookkeeping.
type Stats struct {
	Reserved   uint64 `json:"reserved"`
	Carved     uint64 `json:"carved"`
	Live       int64  `json:"live"`
	FreeBlocks uint64 `json:"free_blocks"`
	FreeBytes  uint64 `json:"free_bytes"`
	Allocs     uint64 `json:"allocs"`
	Carves     uint64 `json:"carves"`
	Reuses     uint64 `json:"reuses"`
	Failures   uint64 `json:"failures"`
	Frees      uint64 `json:"frees"`
}

// Stats walks the free list, so it costs time linear in its length.
func (h *Heap) Stats() Stats {
	st := Stats{
		Reserved: uint64(len(h.mem)),
		Live:     h.stats.live,
		Allocs:   h.stats.carves + h.stats.reuses,
		Carves:   h.stats.carves,
		Reuses:   h.stats.reuses,
		Failures: h.stats.failures,
		Frees:    h.stats.frees,
	}
	if h.ready() {
		st.Carved = uint64(h.carved())
	}
	h.free.each(func(b *header) {
		st.FreeBlocks++
		st.FreeBytes += uint64(b.capacity(false))
	})
	return st
}
