package main

import (
	"bytes"

	"github.com/funny-falcon/neoalloc/alloc"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

var jsonConfig = jsoniter.Config{
	OnlyTaggedField: true,
	CaseSensitive:   true,
}.Froze()

// statsHandler serves a fixed snapshot. The heap itself is never touched
// from request goroutines.
func statsHandler(snap alloc.Stats) fasthttp.RequestHandler {
	body, err := jsonConfig.Marshal(snap)
	if err != nil {
		panic(err)
	}
	return func(ctx *fasthttp.RequestCtx) {
		switch {
		case !ctx.IsGet():
			ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		case bytes.Equal(ctx.Path(), []byte("/stats")):
			ctx.SetContentType("application/json")
			ctx.SetBody(body)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	}
}
