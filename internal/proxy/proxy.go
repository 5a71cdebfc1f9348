// Package proxy forwards requests to the fixed upstream host and relays
// whatever comes back. It is independent of the query endpoints.
package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Forwarder relays requests to a fixed upstream base URL. The client
// timeout bounds the whole exchange so a dead upstream cannot hang the
// caller, and the limiter paces outbound calls.
type Forwarder struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

func New(base string, timeout time.Duration) *Forwarder {
	return &Forwarder{
		base:    strings.TrimSuffix(base, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// Forward relays the inbound request to base/path, keeping the method,
// headers, body and query string. Upstream responses are passed through
// verbatim. Transport failures are reported as a 200 payload with error
// and detail fields rather than an HTTP error status.
func (f *Forwarder) Forward(w http.ResponseWriter, r *http.Request, path string) {
	if err := f.limiter.Wait(r.Context()); err != nil {
		f.writeFailure(w, err)
		return
	}

	target := f.base + "/" + strings.TrimPrefix(path, "/")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		f.writeFailure(w, err)
		return
	}
	for name, values := range r.Header {
		if name == "Host" {
			continue
		}
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.writeFailure(w, err)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

func (f *Forwarder) writeFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":  "proxy request failed",
		"detail": err.Error(),
	})
}
