package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Use(Metrics)
	r.Get("/order/{order_uid}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "order_uid") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("hello"))
	})
	return r
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewTextHandler(&buf, nil)))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/order/u1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "path=/order/u1")
	assert.Contains(t, buf.String(), "bytes=5")
}

func TestMetrics(t *testing.T) {
	r := newRouter(slog.New(slog.DiscardHandler))

	route := "/order/{order_uid}"
	okBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, route, "200"))
	errBefore := testutil.ToFloat64(httpErrorsTotal.WithLabelValues(http.MethodGet, route, "4xx"))
	bytesBefore := testutil.ToFloat64(httpResponseBytes.WithLabelValues(http.MethodGet, route))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/order/u1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/order/missing", nil))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, route, "200")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(httpErrorsTotal.WithLabelValues(http.MethodGet, route, "4xx")))
	assert.Equal(t, bytesBefore+5, testutil.ToFloat64(httpResponseBytes.WithLabelValues(http.MethodGet, route)))
	assert.Zero(t, testutil.ToFloat64(httpInFlight))
}
