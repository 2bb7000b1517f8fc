package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mpetrenko/ordersvc/internal/domain/model"
	"github.com/mpetrenko/ordersvc/internal/server/http/handlers"
	testhelpers "github.com/mpetrenko/ordersvc/internal/test"
)

func newTestEngine(t *testing.T, facade testhelpers.OrderFacadeStub) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return Setup(facade, testhelpers.HealthCheckerStub{}, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{}
	engine := newTestEngine(t, facade)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodGet, "/api/orders/1", "", http.StatusOK},
		{http.MethodPost, "/api/orders", `{"customerId":"cust-1","items":[{"productName":"Laptop","quantity":1,"price":1}]}`, http.StatusCreated},
		{http.MethodPut, "/api/orders/1/status", `{"status":1}`, http.StatusNoContent},
		{http.MethodGet, "/api/orders/stats", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodDelete, "/api/orders/1", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		if tc.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s %s: expected status %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}

func TestSetupStatsRouteNotShadowedByID(t *testing.T) {
	statsCalled := false
	facade := testhelpers.OrderFacadeStub{
		StatsFn: func(context.Context) (*model.OrderStats, error) {
			statsCalled = true
			return &model.OrderStats{OrdersByStatus: map[model.OrderStatus]int64{}}, nil
		},
		OrderFn: func(context.Context, int64) (*model.Order, error) {
			t.Fatal("stats path must not hit the order lookup")
			return nil, nil
		},
	}
	engine := newTestEngine(t, facade)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/stats", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !statsCalled {
		t.Fatal("expected stats facade to be called")
	}
}

func TestSetupGzipResponses(t *testing.T) {
	engine := newTestEngine(t, testhelpers.OrderFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip content encoding, got %q", got)
	}
}

func TestSetupOrderPayload(t *testing.T) {
	engine := newTestEngine(t, testhelpers.OrderFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["customerId"] != "cust-1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

var _ handlers.OrderFacade = (*testhelpers.OrderFacadeStub)(nil)
var _ handlers.HealthChecker = (*testhelpers.HealthCheckerStub)(nil)
