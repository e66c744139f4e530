package alloc

import (
	"fmt"
	"log"
	"unsafe"

	"golang.org/x/sys/unix"
)

// region is one reserved address range. cursor splits carved space from
// untouched space and only moves forward.
type region struct {
	mem    []byte
	start  uintptr
	end    uintptr
	cursor uintptr
}

// fatalf ends the process when the region can't be reserved.
var fatalf = log.Fatalf

func reserve(size uintptr) ([]byte, error) {
	if size == 0 || size > uintptr(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("alloc: bad heap size %d", size)
	}
	mem, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	return mem, nil
}

func (r *region) ready() bool {
	return r.mem != nil
}

func (r *region) init(size uintptr) error {
	if r.ready() {
		return nil
	}
	mem, err := reserve(size)
	if err != nil {
		return err
	}
	r.mem = mem
	r.start = uintptr(unsafe.Pointer(&mem[0]))
	r.end = r.start + uintptr(len(mem))
	r.cursor = r.start
	return nil
}

// carve advances the cursor by total bytes and returns the old cursor,
// or 0 when the region has no room left.
func (r *region) carve(total uintptr) uintptr {
	if total > r.end-r.cursor {
		return 0
	}
	at := r.cursor
	r.cursor += total
	return at
}

func (r *region) carved() uintptr {
	return r.cursor - r.start
}
