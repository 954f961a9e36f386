//go:build js && wasm

// Package main registers fetch functions on the webpage and runs as long as the webpage is open.
package main

import (
	"context"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
	"github.com/jacobpatterson1549/fetch-happen/github"
	"github.com/jacobpatterson1549/fetch-happen/log"
)

// parentName is the global object the functions are set on.
const parentName = "fetchHappen"

// main registers the functions and waits for the webpage to close.
func main() {
	ctx := context.Background()
	ctx, cancelFunc := context.WithCancel(ctx)
	var wg sync.WaitGroup
	f := funcs{
		log:    log.Console{Prefix: "fetch-happen: "},
		client: fetch.DefaultClient,
		github: github.Client{
			HTTP: fetch.DefaultClient,
		},
	}
	global := js.Global()
	f.register(ctx, &wg, global, parentName)
	initBeforeUnloadFn(global, cancelFunc, &wg)
	wg.Wait() // BLOCKING
}

// initBeforeUnloadFn registers a function to cancel the context when the browser is about to close.
// This releases the registered functions.
func initBeforeUnloadFn(global js.Value, cancelFunc context.CancelFunc, wg *sync.WaitGroup) {
	wg.Add(1)
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancelFunc()
		fn.Release()
		wg.Done()
		return nil
	})
	global.Call("addEventListener", "beforeunload", fn)
}
