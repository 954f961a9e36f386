// Package fetch makes HTTP requests through a host-provided fetch primitive.
//
// Requests are described with a RequestBuilder, sent through a Transport, and read through a Response.
// In the browser, the Transport is the window's fetch function.  Elsewhere, it is net/http.
package fetch

import "context"

// Client creates request builders.
// It holds no state other than the transport that sends requests.
type Client struct {
	// Transport sends requests.  DefaultTransport is used if it is nil.
	Transport Transport
}

// DefaultClient is the client used by the package-level functions.
var DefaultClient = Client{}

// Request creates a builder for a request with the method and url.
func (c Client) Request(method Method, url string) RequestBuilder {
	b := RequestBuilder{
		transport: c.Transport,
		method:    method,
		url:       url,
		mode:      ModeCors,
	}
	return b
}

// Get creates a builder for a GET request.
func (c Client) Get(url string) RequestBuilder {
	return c.Request(MethodGet, url)
}

// Post creates a builder for a POST request.
func (c Client) Post(url string) RequestBuilder {
	return c.Request(MethodPost, url)
}

// Put creates a builder for a PUT request.
func (c Client) Put(url string) RequestBuilder {
	return c.Request(MethodPut, url)
}

// Delete creates a builder for a DELETE request.
func (c Client) Delete(url string) RequestBuilder {
	return c.Request(MethodDelete, url)
}

// Patch creates a builder for a PATCH request.
func (c Client) Patch(url string) RequestBuilder {
	return c.Request(MethodPatch, url)
}

// Get makes a GET request with the DefaultClient.
func Get(ctx context.Context, url string) (*Response, error) {
	return DefaultClient.Get(url).Send(ctx)
}

// PostJSON makes a POST request with the DefaultClient, sending the value as json.
// Nothing is sent if the value cannot be encoded.
func PostJSON(ctx context.Context, url string, v interface{}) (*Response, error) {
	b, err := DefaultClient.Post(url).JSON(v)
	if err != nil {
		return nil, err
	}
	return b.Send(ctx)
}
