package proxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestForwardRelaysUpstreamResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/missions/status" {
			t.Errorf("upstream path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "user=user1" {
			t.Errorf("upstream query: %s", r.URL.RawQuery)
		}
		if r.Header.Get("X-Mission-Token") != "abc" {
			t.Errorf("header not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	f := New(upstream.URL, 5*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/upstar/missions/status?user=user1", nil)
	req.Header.Set("X-Mission-Token", "abc")
	resp := httptest.NewRecorder()
	f.Forward(resp, req, "missions/status")

	if resp.Code != http.StatusTeapot {
		t.Fatalf("status not relayed: %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"ok":true}` {
		t.Fatalf("body not relayed verbatim: %s", got)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type not relayed: %s", ct)
	}
}

func TestForwardWrapsTransportError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	f := New(upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/upstar/anything", nil)
	resp := httptest.NewRecorder()
	f.Forward(resp, req, "anything")

	if resp.Code != http.StatusOK {
		t.Fatalf("transport errors must not become HTTP errors, got %d", resp.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode failure payload: %v", err)
	}
	if payload["error"] != "proxy request failed" {
		t.Fatalf("error field: %q", payload["error"])
	}
	if payload["detail"] == "" {
		t.Fatal("detail field empty")
	}
}
