package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/jacobpatterson1549/fetch-happen/log"
	"golang.org/x/net/publicsuffix"
)

// NativeTransport makes requests using the net/http package.
// The mode of requests is a browser hint and is not used.
type NativeTransport struct {
	// Client makes the requests.  http.DefaultClient is used if it is nil.
	Client *http.Client
	// Log records each exchange if it is not nil.
	Log log.Logger
}

// NewNativeTransport creates a transport with a client that keeps cookies, like a browser does.
func NewNativeTransport(timeout time.Duration, log log.Logger) (*NativeTransport, error) {
	jarOptions := cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	}
	jar, err := cookiejar.New(&jarOptions)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	t := NativeTransport{
		Client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		Log: log,
	}
	return &t, nil
}

// Fetch makes a HTTP request.
func (t NativeTransport) Fetch(ctx context.Context, req Request) (*HostResponse, error) {
	httpRequest, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, req.Body)
	if err != nil {
		return nil, fmt.Errorf("could not create go http request: %w", err)
	}
	for k, v := range req.Headers {
		httpRequest.Header.Set(k, v)
	}
	c := t.Client
	if c == nil {
		c = http.DefaultClient
	}
	httpResponse, err := c.Do(httpRequest)
	if err != nil {
		t.logf("%v %v: %v", req.Method, req.URL, err)
		return nil, fmt.Errorf("could not make http request: %w", err)
	}
	t.logf("%v %v: %v", req.Method, req.URL, httpResponse.StatusCode)
	code := httpResponse.StatusCode
	resp := HostResponse{
		Code:   code,
		OK:     statusOK(code),
		Header: httpResponse.Header,
		Body:   httpResponse.Body,
	}
	return &resp, nil
}

// statusOK determines whether the code is in the successful (2xx) range.
func statusOK(code int) bool {
	return code >= 200 && code <= 299
}

// logf writes to the log if there is one.
func (t NativeTransport) logf(format string, v ...interface{}) {
	if t.Log != nil {
		t.Log.Printf(format, v...)
	}
}
