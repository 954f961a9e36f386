package fetch

import (
	"context"
	"io"
	"strings"
)

type mockTransport struct {
	FetchFunc func(ctx context.Context, req Request) (*HostResponse, error)
}

func (m mockTransport) Fetch(ctx context.Context, req Request) (*HostResponse, error) {
	return m.FetchFunc(ctx, req)
}

type mockHeader map[string]string

func (m mockHeader) Get(name string) string {
	return m[name]
}

type mockReadCloser struct {
	ReadFunc  func(p []byte) (n int, err error)
	CloseFunc func() error
}

func (m *mockReadCloser) Read(p []byte) (n int, err error) {
	return m.ReadFunc(p)
}

func (m *mockReadCloser) Close() error {
	return m.CloseFunc()
}

// newMockBody creates a body that reads the text and counts the times it is read and closed.
func newMockBody(text string, reads, closes *int) io.ReadCloser {
	r := strings.NewReader(text)
	return &mockReadCloser{
		ReadFunc: func(p []byte) (n int, err error) {
			*reads++
			return r.Read(p)
		},
		CloseFunc: func() error {
			*closes++
			return nil
		},
	}
}
