// Package fetchtest implements support for testing code that makes fetch requests.
package fetchtest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
)

type (
	// Transport records requests and answers them with the RespondFunc.
	// It is safe for concurrent use.
	Transport struct {
		// RespondFunc creates the response for a recorded request.
		RespondFunc func(req Recorded) (*fetch.HostResponse, error)
		mu          sync.Mutex
		requests    []Recorded
	}

	// Recorded is a request the Transport received, with the body read into a string.
	Recorded struct {
		fetch.Request
		// BodyText is the request body.
		BodyText string
		// HasBody is false if the request body was nil.
		HasBody bool
	}
)

// Transport implements the fetch.Transport interface.
var _ fetch.Transport = new(Transport)

// Fetch records the request and responds to it.
func (t *Transport) Fetch(ctx context.Context, req fetch.Request) (*fetch.HostResponse, error) {
	r := Recorded{
		Request: req,
	}
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		r.BodyText = string(b)
		r.HasBody = true
		r.Body = strings.NewReader(r.BodyText)
	}
	t.mu.Lock()
	t.requests = append(t.requests, r)
	t.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.RespondFunc == nil {
		return NewResponse(http.StatusOK, ""), nil
	}
	return t.RespondFunc(r)
}

// Requests returns the recorded requests in the order they were received.
func (t *Transport) Requests() []Recorded {
	t.mu.Lock()
	defer t.mu.Unlock()
	requests := make([]Recorded, len(t.requests))
	copy(requests, t.requests)
	return requests
}

// NewResponse creates a host response with the status code and body.
// Alternating header keys and values can be supplied.
func NewResponse(code int, body string, headerKVs ...string) *fetch.HostResponse {
	h := make(http.Header, len(headerKVs)/2)
	for i := 0; i+1 < len(headerKVs); i += 2 {
		h.Set(headerKVs[i], headerKVs[i+1])
	}
	hr := fetch.HostResponse{
		Code:   code,
		OK:     code >= 200 && code <= 299,
		Header: h,
		Body:   NewBody(body),
	}
	return &hr
}

// Body is a response body that records whether it was read or closed.
type Body struct {
	r      io.Reader
	mu     sync.Mutex
	read   bool
	closed bool
}

// NewBody creates a body that reads the text.
func NewBody(text string) *Body {
	b := Body{
		r: strings.NewReader(text),
	}
	return &b
}

// Read implements the io.Reader interface.
func (b *Body) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.read = true
	return b.r.Read(p)
}

// Close implements the io.Closer interface.
func (b *Body) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// WasRead determines whether Read was called.
func (b *Body) WasRead() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read
}

// WasClosed determines whether Close was called.
func (b *Body) WasClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
