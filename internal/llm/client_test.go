package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(provider Provider) (*Client, *[]time.Duration) {
	c := NewClient(provider, 5*time.Second, 3)
	waits := &[]time.Duration{}
	c.retry.Sleep = func(_ context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
	return c, waits
}

func TestComplete_RetriesThenSucceeds(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"reply\":\"hi\",\"product_id\":1}"}]}}]}`))
	}))
	defer srv.Close()

	c, waits := newTestClient(NewGeminiProvider(srv.URL, "test-key"))
	raw, err := c.Complete(context.Background(), Instruction{System: "s", User: "u", ProductIDType: "NUMBER"})
	if err != nil {
		t.Fatalf("expected success on 3rd attempt, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected 3 upstream hits, got %d", hits)
	}
	if len(*waits) != 2 || (*waits)[0] != 2*time.Second || (*waits)[1] != 4*time.Second {
		t.Fatalf("expected backoff waits 2s,4s, got %v", *waits)
	}

	text, err := c.ExtractText(raw)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if text != `{"reply":"hi","product_id":1}` {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestComplete_ExhaustsOnPersistentFailure(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := newTestClient(NewGeminiProvider(srv.URL, "test-key"))
	_, err := c.Complete(context.Background(), Instruction{User: "u", ProductIDType: "NUMBER"})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", hits)
	}
}

func TestComplete_RetriesNonJSONBody(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		// 200 with an HTML error page still counts as a transient failure
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	c, _ := newTestClient(NewGeminiProvider(srv.URL, "test-key"))
	_, err := c.Complete(context.Background(), Instruction{User: "u", ProductIDType: "NUMBER"})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits)
	}
}

func TestComplete_SendsQueryKeyAndJSONBody(t *testing.T) {
	var gotKey, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(NewGeminiProvider(srv.URL, "secret"))
	if _, err := c.Complete(context.Background(), Instruction{User: "u", ProductIDType: "NUMBER"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret" {
		t.Fatalf("expected api key in query string, got %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
}
