package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type pinger struct {
	err error
}

func (p pinger) Ping(_ context.Context) error {
	return p.err
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	body, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatal(err)
	}
	return w.Code, string(body)
}

func TestLive(t *testing.T) {
	code, _ := get(t, NewRouter(nil, prometheus.NewRegistry()), "/live")
	if code != http.StatusOK {
		t.Errorf("expected 200 from /live, got %d", code)
	}
}

func TestReady(t *testing.T) {
	code, body := get(t, NewRouter(pinger{}, prometheus.NewRegistry()), "/ready")
	if code != http.StatusOK || body != "ready" {
		t.Errorf("expected ready, got %d %s", code, body)
	}

	code, body = get(t, NewRouter(pinger{err: errors.New("dial tcp: connection refused")}, prometheus.NewRegistry()), "/ready")
	if code != http.StatusServiceUnavailable || body != "unready" {
		t.Errorf("expected unready when the store can't be reached, got %d %s", code, body)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "bank_test_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Inc()

	code, body := get(t, NewRouter(nil, reg), "/metrics")
	if code != http.StatusOK {
		t.Errorf("expected 200 from /metrics, got %d", code)
	}
	if !strings.Contains(body, "bank_test_total 1") {
		t.Error("expected the registered counter in the scrape output:\n" + body)
	}
}
