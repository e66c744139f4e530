package main

import (
	"flag"
	"log"
	"os"

	"github.com/funny-falcon/neoalloc/alloc"
	"github.com/valyala/fasthttp"
)

var heapSize = flag.Uint64("heap", alloc.HeapSize, "bytes of address space to reserve")
var trace = flag.Bool("trace", true, "trace allocator calls to stdout")
var printStats = flag.Bool("stats", false, "print heap stats as json when done")
var statsAddr = flag.String("stats-addr", "", "serve heap stats over http on this address")

func main() {
	log.SetFlags(log.Lmicroseconds | log.Lshortfile)
	flag.Parse()

	tracer := alloc.NoTrace
	if *trace {
		tracer = alloc.Stdout
	}
	heap := alloc.NewHeap(uintptr(*heapSize), tracer)
	heap.Init()

	runDemo(heap)

	snap := heap.Stats()
	if *printStats {
		body, err := jsonConfig.Marshal(snap)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(append(body, '\n'))
	}

	if *statsAddr == "" {
		return
	}
	log.Printf("serving stats on %s", *statsAddr)
	err := fasthttp.ListenAndServe(*statsAddr, statsHandler(snap))
	if err != nil {
		log.Fatal(err)
	}
}
