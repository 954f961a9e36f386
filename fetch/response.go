package fetch

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/tidwall/gjson"
)

// Response is the result of a request that the host completed.
// The body can only be read once.  A Response should not be used by multiple goroutines.
type Response struct {
	host     HostResponse
	consumed bool
}

// newResponse wraps the host response.
func newResponse(hr HostResponse) *Response {
	r := Response{
		host: hr,
	}
	return &r
}

// Status is the HTTP status code.
func (r *Response) Status() int {
	return r.host.Code
}

// OK determines whether the host considers the status successful.
func (r *Response) OK() bool {
	return r.host.OK
}

// Header returns the value of the response header, or the empty string if it is absent.
func (r *Response) Header(name string) string {
	if r.host.Header == nil {
		return ""
	}
	return r.host.Header.Get(name)
}

// Bytes reads the whole response body.
func (r *Response) Bytes() ([]byte, error) {
	if r.consumed {
		return nil, ErrBodyConsumed
	}
	r.consumed = true
	body := r.host.Body
	if body == nil {
		return []byte{}, nil
	}
	defer body.Close()
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return b, nil
}

// Text reads the whole response body as a string.
func (r *Response) Text() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// JSON reads the response body and decodes it into v, which should be a pointer.
func (r *Response) JSON(v interface{}) error {
	text, err := r.Text()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &JSONError{
			Message: "decoding response body: " + err.Error(),
			Err:     err,
		}
	}
	return nil
}

// DecodeJSON reads the response body as json into a new T.
func DecodeJSON[T any](r *Response) (T, error) {
	var v T
	if err := r.JSON(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// JSONValue reads the response body as an untyped json value.
func (r *Response) JSONValue() (gjson.Result, error) {
	text, err := r.Text()
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, &JSONError{
			Message: "response body is not valid json",
		}
	}
	return gjson.Parse(text), nil
}

// ErrorForStatus returns the response if it is ok.
// Otherwise, the response is closed and an error with the status code is returned.
// A failure to close the body is joined to the status error.
func (r *Response) ErrorForStatus() (*Response, error) {
	if r.OK() {
		return r, nil
	}
	statusErr := newStatusError(r.Status())
	if err := r.Close(); err != nil {
		return nil, errors.Join(statusErr, &TransportError{Err: err})
	}
	return nil, statusErr
}

// Close releases the response body without reading it.
// Reading the body after the response is closed fails.
func (r *Response) Close() error {
	if r.consumed {
		return nil
	}
	r.consumed = true
	if r.host.Body == nil {
		return nil
	}
	return r.host.Body.Close()
}
