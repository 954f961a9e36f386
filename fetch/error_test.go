package fetch

import (
	"errors"
	"testing"
)

func TestTransportError(t *testing.T) {
	hostErr := errors.New("Failed to fetch")
	transportErrorTests := []struct {
		TransportError
		want string
	}{
		{
			want: "transport error",
		},
		{
			TransportError: TransportError{Err: hostErr},
			want:           "transport error: Failed to fetch",
		},
	}
	for i, test := range transportErrorTests {
		err := &test.TransportError
		if want, got := test.want, err.Error(); want != got {
			t.Errorf("Test %v: wanted %q, got %q", i, want, got)
		}
		if want, got := test.Err, err.Unwrap(); want != got {
			t.Errorf("Test %v: wanted unwrapped error %v, got %v", i, want, got)
		}
	}
}

func TestNewStatusError(t *testing.T) {
	err := newStatusError(418)
	switch {
	case err.Code != 418:
		t.Errorf("wanted code to be set, got %v", err.Code)
	case err.Error() != "HTTP Error 418":
		t.Errorf("unwanted message: %q", err.Error())
	}
}

func TestJSONError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &JSONError{
		Message: "decoding response body: " + cause.Error(),
		Err:     cause,
	}
	if want, got := "json error: decoding response body: unexpected end of JSON input", err.Error(); want != got {
		t.Errorf("wanted %q, got %q", want, got)
	}
	if !errors.Is(err, cause) {
		t.Errorf("wanted cause to be wrapped")
	}
}
