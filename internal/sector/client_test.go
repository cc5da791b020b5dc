package sector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sectors/TCS":
			_, _ = w.Write([]byte(`{"symbol":"TCS","sector":"Information Technology"}`))
		case "/sectors/NOPE":
			w.WriteHeader(http.StatusNotFound)
		case "/sectors/EMPTY":
			_, _ = w.Write([]byte(`{"symbol":"EMPTY","sector":""}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	cases := []struct {
		symbol string
		want   string
	}{
		{"TCS", "Information Technology"},
		{"NOPE", Unknown},
		{"EMPTY", Unknown},
		{"BOOM", Unknown}, // 500 degrades to Unknown
	}
	for _, tc := range cases {
		got, err := c.Lookup(context.Background(), tc.symbol)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tc.symbol, err)
		}
		if got != tc.want {
			t.Fatalf("Lookup(%s) = %q, want %q", tc.symbol, got, tc.want)
		}
	}
}

func TestLookup_Cached(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"symbol":"TCS","sector":"Information Technology"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	for i := 0; i < 3; i++ {
		if _, err := c.Lookup(context.Background(), "TCS"); err != nil {
			t.Fatalf("Lookup: %v", err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("provider called %d times, want 1", n)
	}
}

func TestLookup_Disabled(t *testing.T) {
	c := NewClient("", time.Second)
	got, err := c.Lookup(context.Background(), "TCS")
	if err != nil || got != Unknown {
		t.Fatalf("Lookup = %q, %v; want Unknown, nil", got, err)
	}
}

func TestLookup_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Lookup(ctx, "TCS"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLookupAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sectors/TCS" {
			_, _ = w.Write([]byte(`{"symbol":"TCS","sector":"Information Technology"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.LookupAll(context.Background(), []string{"TCS", "XYZ"})
	if err != nil {
		t.Fatalf("LookupAll: %v", err)
	}
	if got["TCS"] != "Information Technology" || got["XYZ"] != Unknown {
		t.Fatalf("unexpected map: %v", got)
	}
}

func TestLookupAll_Empty(t *testing.T) {
	c := NewClient("", time.Second)
	got, err := c.LookupAll(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("LookupAll = %v, %v", got, err)
	}
}
