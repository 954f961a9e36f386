package logtest

import (
	"reflect"
	"sync"
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger()
	switch {
	case l == nil:
		t.Errorf("wanted non-nil Logger")
	case !l.Empty():
		t.Errorf("wanted new logger to be empty")
	case len(l.Lines()) != 0:
		t.Errorf("wanted no lines, got %v", l.Lines())
	}
}

func TestDiscardLoggerPrintf(t *testing.T) {
	DiscardLogger.Printf("%v %v", "GET", "https://example.com")
}

func TestLoggerPrintf(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		printfTests := []struct {
			format string
			v      []interface{}
			want   string
		}{
			{},
			{
				format: "fetching %s",
				v:      []interface{}{"https://example.com"},
				want:   "fetching https://example.com",
			},
			{
				format: "%v %v: %d\n",
				v:      []interface{}{"POST", "https://example.com/issues", 201},
				want:   "POST https://example.com/issues: 201",
			},
		}
		for i, test := range printfTests {
			l := NewLogger()
			l.Printf(test.format, test.v...)
			got := l.String()
			if test.want != got {
				t.Errorf("Test %v:\nwanted: %v\ngot:    %v", i, test.want, got)
			}
		}
	})
	t.Run("async race", func(t *testing.T) {
		l := NewLogger()
		n := 10
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				l.Printf("a")
				wg.Done()
			}()
		}
		wg.Wait()
		if want, got := n, len(l.Lines()); want != got {
			t.Errorf("wanted %v lines, got %v", want, got)
		}
	})
}

func TestLoggerLines(t *testing.T) {
	l := NewLogger()
	l.Printf("GET %v: %v", "https://example.com", 200)
	l.Printf("PUT %v: %v", "https://example.com", 204)
	want := []string{
		"GET https://example.com: 200",
		"PUT https://example.com: 204",
	}
	got := l.Lines()
	switch {
	case !reflect.DeepEqual(want, got):
		t.Errorf("not equal:\nwanted: %v\ngot:    %v", want, got)
	case l.String() != want[0]+"\n"+want[1]:
		t.Errorf("wanted lines joined by newlines, got %q", l.String())
	}
	got[0] = "changed"
	if l.Lines()[0] != want[0] {
		t.Errorf("wanted returned lines to be a copy")
	}
}

func TestLoggerReset(t *testing.T) {
	l := NewLogger()
	l.Printf("1. GET")
	l.Printf("2. POST")
	if l.Empty() {
		t.Fatalf("wanted logger to have lines")
	}
	l.Reset()
	switch {
	case !l.Empty():
		t.Errorf("wanted Logger to be empty after reset")
	case l.String() != "":
		t.Errorf("wanted Logger string to be empty after reset, got %v", l.String())
	}
}
