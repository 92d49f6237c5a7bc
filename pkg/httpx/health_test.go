package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemsdemo/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		"store":     &stubChecker{},
		"event_bus": &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp["status"] != "ok" {
		t.Errorf("status: got %q, want %q", resp["status"], "ok")
	}
	if resp["store"] != "ok" || resp["event_bus"] != "ok" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthHandler_StoreDown(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		"store":     &stubChecker{err: errors.New("closed")},
		"event_bus": &stubChecker{},
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if resp["status"] != "degraded" || resp["store"] != "unreachable" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp["event_bus"] != "ok" {
		t.Errorf("event_bus: got %q, want ok", resp["event_bus"])
	}
}

func TestHealthHandler_RedisDown(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		"store": &stubChecker{},
		"redis": &stubChecker{err: errors.New("timeout")},
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if resp["status"] != "degraded" || resp["redis"] != "unreachable" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthHandler_NilCheckerSkipped(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		"store": &stubChecker{},
		"redis": nil,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if _, ok := resp["redis"]; ok {
		t.Errorf("nil checker should not be reported: %+v", resp)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.HealthHandler(httpx.HealthChecks{"store": &stubChecker{}}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
