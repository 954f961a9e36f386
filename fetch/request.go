package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"net/textproto"
	"strings"
)

// RequestBuilder accumulates the parts of a request before it is sent.
// Each configuration method returns a new builder, leaving the receiver unchanged.
type RequestBuilder struct {
	transport Transport
	method    Method
	url       string
	headers   map[string]string
	body      *string
	mode      Mode
}

// NewRequest creates a builder for a request sent with the DefaultClient.
func NewRequest(method Method, url string) RequestBuilder {
	return DefaultClient.Request(method, url)
}

// Header sets a header, replacing any value previously set for the key.
// Keys are case-insensitive.
func (b RequestBuilder) Header(key, value string) RequestBuilder {
	b.headers = maps.Clone(b.headers)
	if b.headers == nil {
		b.headers = make(map[string]string, 1)
	}
	b.headers[textproto.CanonicalMIMEHeaderKey(key)] = value
	return b
}

// Headers sets multiple headers, replacing values of keys that are already set.
func (b RequestBuilder) Headers(headers map[string]string) RequestBuilder {
	b.headers = maps.Clone(b.headers)
	if b.headers == nil {
		b.headers = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		b.headers[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	return b
}

// BearerAuth sets the Authorization header to use the token.
func (b RequestBuilder) BearerAuth(token string) RequestBuilder {
	return b.Header("Authorization", "Bearer "+token)
}

// Mode sets the cross-origin mode of the request.
func (b RequestBuilder) Mode(m Mode) RequestBuilder {
	b.mode = m
	return b
}

// Body sets the request body.
func (b RequestBuilder) Body(body string) RequestBuilder {
	b.body = &body
	return b
}

// JSON sets the request body to the json encoding of the value and the Content-Type to application/json.
func (b RequestBuilder) JSON(v interface{}) (RequestBuilder, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return b, &JSONError{
			Message: "encoding request body: " + err.Error(),
			Err:     err,
		}
	}
	return b.Body(string(data)).Header("Content-Type", "application/json"), nil
}

// Send makes the request with the transport of the client that created the builder.
// It blocks until the host has the response status and headers or fails.
func (b RequestBuilder) Send(ctx context.Context) (*Response, error) {
	req, err := b.request()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	t := b.transport
	if t == nil {
		t = DefaultTransport
	}
	hr, err := t.Fetch(ctx, *req)
	switch {
	case err != nil:
		return nil, &TransportError{Err: err}
	case hr == nil:
		return nil, &TransportError{Err: errors.New("host returned no response")}
	}
	return newResponse(*hr), nil
}

// request materializes the descriptor that is given to the host.
func (b RequestBuilder) request() (*Request, error) {
	switch {
	case !b.method.Valid():
		return nil, errors.New("unknown method: " + b.method.String())
	case len(b.url) == 0:
		return nil, errors.New("missing url")
	}
	req := Request{
		Method:  b.method,
		URL:     b.url,
		Headers: make(map[string]string, len(b.headers)),
		Mode:    b.mode,
	}
	for k, v := range b.headers {
		req.Headers[k] = v
	}
	if b.body != nil {
		req.Body = strings.NewReader(*b.body)
	}
	return &req, nil
}
