package alloc

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// Tracer is a file descriptor the heap writes its diagnostics to. Writes go
// straight to the descriptor with no buffering in between.
type Tracer int

const (
	NoTrace Tracer = -1
	Stdout  Tracer = 1
	Stderr  Tracer = 2
)

func (t Tracer) write(b []byte) {
	if t < 0 {
		return
	}
	for len(b) > 0 {
		n, err := unix.Write(int(t), b)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n <= 0 {
			return
		}
		b = b[n:]
	}
}

func (t Tracer) banner() {
	t.write([]byte("neo!\n"))
}

// call writes "name(n) called".
func (t Tracer) call(name string, n uintptr) {
	if t < 0 {
		return
	}
	var buf [64]byte
	b := append(buf[:0], name...)
	b = append(b, '(')
	b = strconv.AppendUint(b, uint64(n), 10)
	b = append(b, ") called\n"...)
	t.write(b)
}
