//go:build js && wasm

package fetch

import (
	"bytes"
	"context"
	"io"

	wasmfetch "marwan.io/wasm-fetch"
)

// wasmFetchFunc calls the window's fetch function.
var wasmFetchFunc = wasmfetch.Fetch

// BrowserTransport makes requests with the browser's fetch function.
// The response body is read completely before Fetch returns.
type BrowserTransport struct {
	// Credentials controls whether the browser sends cookies: "omit", "same-origin", or "include".
	// The browser default is used if it is empty.
	Credentials string
}

// DefaultTransport is the browser's fetch function.
var DefaultTransport Transport = BrowserTransport{}

// Fetch makes a HTTP request.  Cancelling the context aborts the request.
func (t BrowserTransport) Fetch(ctx context.Context, req Request) (*HostResponse, error) {
	opts := wasmfetch.Opts{
		Method:      req.Method.String(),
		Headers:     req.Headers,
		Body:        req.Body,
		Mode:        req.Mode.String(),
		Credentials: t.Credentials,
		Signal:      ctx,
	}
	resp, err := wasmFetchFunc(req.URL, &opts)
	if err != nil {
		return nil, err
	}
	hr := HostResponse{
		Code:   resp.Status,
		OK:     resp.OK,
		Header: &resp.Headers,
		Body:   io.NopCloser(bytes.NewReader(resp.Body)),
	}
	return &hr, nil
}
