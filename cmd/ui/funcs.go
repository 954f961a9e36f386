//go:build js && wasm

package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
	"github.com/jacobpatterson1549/fetch-happen/github"
	"github.com/jacobpatterson1549/fetch-happen/log"
)

type (
	// funcs are the operations exposed to javascript.
	funcs struct {
		log    log.Logger
		client fetch.Client
		github github.Client
	}

	// asyncFunc computes the result of a javascript call from its first argument.
	asyncFunc func(ctx context.Context, arg string) (interface{}, error)
)

// register sets the functions as fields on the parent, which is created if it does not exist.
// The functions are released when the context is done.
func (f funcs) register(ctx context.Context, wg *sync.WaitGroup, global js.Value, parentName string) {
	jsFuncs := map[string]js.Func{
		"get":    f.newJsFunc(ctx, "get", f.get),
		"branch": f.newJsFunc(ctx, "branch", f.branch),
	}
	parent := global.Get(parentName)
	if parent.IsUndefined() {
		parent = js.ValueOf(make(map[string]interface{}))
		global.Set(parentName, parent)
	}
	for fnName, fn := range jsFuncs {
		parent.Set(fnName, fn)
	}
	wg.Add(1)
	go func() {
		<-ctx.Done() // BLOCKING
		for _, fn := range jsFuncs {
			fn.Release()
		}
		wg.Done()
	}()
}

// newJsFunc creates a javascript function of a string argument and a callback.
// The callback is called with an error message or null, then the result.
// Requests block until the browser responds, so the function runs on a separate goroutine.
func (f funcs) newJsFunc(ctx context.Context, name string, fn asyncFunc) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) != 2 || args[0].Type() != js.TypeString || args[1].Type() != js.TypeFunction {
			f.log.Printf("%v: wanted string and callback arguments", name)
			return nil
		}
		arg, callback := args[0].String(), args[1]
		go func() {
			result, err := f.call(ctx, fn, arg)
			if err != nil {
				f.log.Printf("%v %v: %v", name, arg, err)
				callback.Invoke(err.Error(), js.Null())
				return
			}
			callback.Invoke(js.Null(), result)
		}()
		return nil
	})
}

// call runs the function, converting a panic to an error.
func (funcs) call(ctx context.Context, fn asyncFunc, arg string) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = errors.New("unexpected error: " + v.Error())
			default:
				err = fmt.Errorf("unexpected error: %v", v)
			}
		}
	}()
	return fn(ctx, arg)
}

// get requests the url and returns the response text if the status is successful.
func (f funcs) get(ctx context.Context, url string) (interface{}, error) {
	resp, err := f.client.Get(url).Send(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := resp.ErrorForStatus(); err != nil {
		return nil, err
	}
	return resp.Text()
}

// branch gets the master branch of the repository as an object with its name and commit.
func (f funcs) branch(ctx context.Context, repo string) (interface{}, error) {
	b, err := f.github.Branch(ctx, repo, "master")
	if err != nil {
		return nil, err
	}
	m := map[string]interface{}{
		"name": b.Name,
		"commit": map[string]interface{}{
			"sha": b.Commit.SHA,
			"url": b.Commit.URL,
		},
	}
	return m, nil
}
