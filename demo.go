//go:build !nodemo

package main

import (
	"fmt"
	"log"

	"github.com/funny-falcon/neoalloc/alloc"
)

const demoInts = 100

func runDemo(h *alloc.Heap) {
	p := h.Alloc(demoInts * 4)
	if p == nil {
		log.Fatal("demo: allocation failed")
	}
	var x *[demoInts]int32
	h.Get(p, &x)
	fmt.Printf("x = %p\n", x)

	for i := range x {
		x[i] = int32(i * 2)
	}
	fmt.Printf("x[%d] = %d\n", demoInts/2, x[demoInts/2])

	y := h.Alloc(64)
	z := h.Alloc(96)
	w := h.Alloc(48)
	fmt.Printf("y = %p, z = %p, w = %p\n", y, z, w)

	h.Dealloc(p)
	h.Dealloc(z)

	a := h.Alloc(72)
	fmt.Printf("a = %p\n", a)
}
