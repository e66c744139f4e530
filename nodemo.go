//go:build nodemo

package main

import "github.com/funny-falcon/neoalloc/alloc"

// runDemo is compiled out when the allocator is embedded elsewhere.
func runDemo(h *alloc.Heap) {}
