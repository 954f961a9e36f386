// Package main makes a single HTTP request configured from supplied or standard arguments.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
)

// main configures and makes the request.
func main() {
	ctx := context.Background()
	ctx, cancelFunc := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancelFunc()
	logFlags := log.Ldate | log.Ltime | log.LUTC | log.Lmsgprefix
	log := log.New(os.Stderr, "fetch: ", logFlags)
	m := newMainFlags(os.Args, os.LookupEnv)
	c, err := m.newClient(log)
	if err != nil {
		log.Fatalf("creating client: %v", err)
	}
	if err := m.run(ctx, *c, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// newClient creates a client that uses net/http.
// The log records exchanges if the flags are verbose.
func (m mainFlags) newClient(log *log.Logger) (*fetch.Client, error) {
	t, err := fetch.NewNativeTransport(m.timeout, nil)
	if err != nil {
		return nil, err
	}
	if m.verbose {
		t.Log = log
	}
	c := fetch.Client{
		Transport: t,
	}
	return &c, nil
}

// run makes the request and writes the response to w.
func (m mainFlags) run(ctx context.Context, c fetch.Client, w io.Writer) error {
	b, err := m.request(c)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := b.Send(ctx)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	if m.include {
		fmt.Fprintf(w, "status: %d\n", resp.Status())
		if ct := resp.Header("Content-Type"); len(ct) != 0 {
			fmt.Fprintf(w, "content-type: %s\n", ct)
		}
		fmt.Fprintln(w)
	}
	if m.fail {
		if _, err := resp.ErrorForStatus(); err != nil {
			return err
		}
	}
	body, err := resp.Bytes()
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// request creates the request builder from the flags.
func (m mainFlags) request(c fetch.Client) (*fetch.RequestBuilder, error) {
	if len(m.url) == 0 {
		return nil, errors.New("missing url")
	}
	method := fetch.Method(strings.ToUpper(m.method))
	switch {
	case len(method) != 0:
	case len(m.data) != 0:
		method = fetch.MethodPost
	default:
		method = fetch.MethodGet
	}
	if !method.Valid() {
		return nil, errors.New("unknown method: " + m.method)
	}
	mode, err := fetch.ParseMode(m.mode)
	if err != nil {
		return nil, err
	}
	b := c.Request(method, m.url).
		Header("User-Agent", m.userAgent).
		Headers(m.headers).
		Mode(mode)
	switch {
	case m.json:
		b, err = b.JSON(json.RawMessage(m.data))
		if err != nil {
			return nil, err
		}
	case len(m.data) != 0:
		b = b.Body(m.data)
	}
	return &b, nil
}
