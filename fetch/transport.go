package fetch

import (
	"context"
	"io"
)

type (
	// Transport is the host capability that performs the network exchange.
	Transport interface {
		// Fetch makes the request, returning when the host has the response status and headers.
		Fetch(ctx context.Context, req Request) (*HostResponse, error)
	}

	// TransportFunc is a function that implements Transport.
	TransportFunc func(ctx context.Context, req Request) (*HostResponse, error)

	// Request identifies the question to ask a server.
	Request struct {
		// Method is the HTTP method.
		Method Method
		// URL is the address to the server.
		URL string
		// Headers contain additional request properties, keyed by canonical header name.
		Headers map[string]string
		// Body contains additional request data.  It is nil if no body was set.
		Body io.Reader
		// Mode is the cross-origin policy hint.
		Mode Mode
	}

	// HostResponse is what the server responds, as reported by the host.
	HostResponse struct {
		// Code is a descriptive status about the server handled the response (200 OK, 500 Internal Server Error).
		Code int
		// OK is whether the host considers the code successful.
		OK bool
		// Header looks up response headers.  It may be nil.
		Header Header
		// Body contains the response data.  It may be nil for empty responses.
		Body io.ReadCloser
	}

	// Header gets the value of a response header, or the empty string if the header is absent.
	Header interface {
		Get(name string) string
	}
)

// Fetch calls the function.
func (f TransportFunc) Fetch(ctx context.Context, req Request) (*HostResponse, error) {
	return f(ctx, req)
}
