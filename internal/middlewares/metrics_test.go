package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/api/convert", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	r.Get("/api/rates", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	for _, path := range []string{"/api/convert?amount=1", "/api/convert?amount=2", "/api/rates"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/convert", "GET", "422")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/rates", "GET", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}
