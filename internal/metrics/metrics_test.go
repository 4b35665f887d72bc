package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewMetrics()
		_ = NewMetrics()
	}, "private registries must not collide")
}

func TestObserve(t *testing.T) {
	m := NewMetrics()

	m.ObserveCacheLookup("latest", "hit")
	m.ObserveCacheLookup("latest", "hit")
	m.ObserveUpstreamFetch("latest", nil)
	m.ObserveUpstreamFetch("latest", errors.New("boom"))
	m.ObserveConversion("ok")
	m.ObserveTimeseries()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("latest", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamFetchesTotal.WithLabelValues("latest", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionRequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TimeseriesRequestsTotal))
}

func TestObserve_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCacheLookup("latest", "miss")
		m.ObserveUpstreamFetch("latest", nil)
		m.ObserveConversion("error")
		m.ObserveTimeseries()
	})
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveTimeseries()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "timeseries_requests_total 1")
}
