package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func newAPIServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRatesHTTPFacade_FetchRates(t *testing.T) {
	srv := newAPIServer(t, map[string]string{
		"/rates": `{"base":"USD","date":"2026-01-19","rates":{"EUR":0.92,"JPY":149.5,"USD":1},"meta":{"cached":false}}`,
	})

	table, err := NewRatesHTTPFacade(srv.URL, "USD", time.Second).FetchRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Code("USD"), table.Base)
	assert.Equal(t, "2026-01-19", table.Date)
	assert.Len(t, table.Rates, 2)
	assert.False(t, table.FetchedAt.IsZero())
}

func TestRatesHTTPFacade_FetchRates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"not json", `<html>`, models.ErrParseFailure},
		{"no rates", `{"base":"USD"}`, models.ErrParseFailure},
		{"negative rate", `{"base":"USD","rates":{"EUR":-1}}`, models.ErrParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAPIServer(t, map[string]string{"/rates": tt.body})
			_, err := NewRatesHTTPFacade(srv.URL, "USD", time.Second).FetchRates(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing base falls back to default", func(t *testing.T) {
		srv := newAPIServer(t, map[string]string{"/rates": `{"rates":{"EUR":0.92}}`})
		table, err := NewRatesHTTPFacade(srv.URL, "USD", time.Second).FetchRates(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.Code("USD"), table.Base)
	})

	t.Run("http failure", func(t *testing.T) {
		srv := newAPIServer(t, nil)
		_, err := NewRatesHTTPFacade(srv.URL, "USD", time.Second).FetchRates(context.Background())
		var netErr *models.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, http.StatusNotFound, netErr.Status)
		assert.Equal(t, "not found", netErr.Detail)
	})
}

func TestConvertHTTPFacade_Convert(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"base":"USD","from":"EUR","to":"JPY","amount":100,"result":16250,"fx_rate":162.5,"fx_date":"2026-01-19","meta":{"cached":true}}`))
	}))
	defer srv.Close()

	res, err := NewConvertHTTPFacade(srv.URL, time.Second).Convert(context.Background(), 100, "EUR", "JPY")
	require.NoError(t, err)
	assert.Equal(t, "amount=100&from=EUR&to=JPY", gotQuery)
	assert.InDelta(t, 16250, res.Result, 1e-9)
	assert.InDelta(t, 162.5, res.Rate, 1e-9)
	assert.Equal(t, models.Code("USD"), res.Base)
	assert.Equal(t, "2026-01-19", res.FxDate)
	assert.True(t, res.Cached)
	assert.NotNil(t, res.AsOf)
}

func TestConvertHTTPFacade_Convert_FetchedAt(t *testing.T) {
	srv := newAPIServer(t, map[string]string{
		"/convert": `{"base":"USD","result":92,"fx_rate":0.92,"fetched_at":"2026-01-19T10:30:00Z","meta":{"cached":true}}`,
	})

	res, err := NewConvertHTTPFacade(srv.URL, time.Second).Convert(context.Background(), 100, "USD", "EUR")
	require.NoError(t, err)
	require.NotNil(t, res.AsOf)
	assert.True(t, res.AsOf.Equal(time.Date(2026, 1, 19, 10, 30, 0, 0, time.UTC)))
}

func TestConvertHTTPFacade_Convert_MissingResult(t *testing.T) {
	srv := newAPIServer(t, map[string]string{"/convert": `{"result":"n/a"}`})
	_, err := NewConvertHTTPFacade(srv.URL, time.Second).Convert(context.Background(), 1, "EUR", "JPY")
	assert.ErrorIs(t, err, models.ErrParseFailure)
}

func TestTimeseriesHTTPFacade_FetchTrend(t *testing.T) {
	srv := newAPIServer(t, map[string]string{
		"/timeseries": `{"base":"USD","symbol":"EUR","days":3,"points":[
			{"date":"2026-01-03","rate":0.9},
			{"date":"2026-01-01","rate":1.0},
			{"date":"2026-01-02","value":1.2}
		],"meta":{"cached":true,"stale":true,"source":"cache_fallback"}}`,
	})

	series, err := NewTimeseriesHTTPFacade(srv.URL, time.Second).FetchTrend(context.Background(), "EUR", 3)
	require.NoError(t, err)
	require.Len(t, series.Points, 3)
	assert.Equal(t, "2026-01-03", series.Points[0].Date.String())
	assert.InDelta(t, 1.2, series.Points[2].Rate, 1e-9)
	assert.True(t, series.Meta.Cached)
	assert.True(t, series.Meta.Stale)
	assert.Equal(t, "cache_fallback", series.Meta.Source)
	assert.Equal(t, models.Code("USD"), series.Base)
}

func TestTimeseriesHTTPFacade_FetchTrend_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no points", `{"base":"USD"}`},
		{"bad date", `{"points":[{"date":"yesterday","rate":1}]}`},
		{"bad rate", `{"points":[{"date":"2026-01-01","rate":"x"}]}`},
		{"not json", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAPIServer(t, map[string]string{"/timeseries": tt.body})
			_, err := NewTimeseriesHTTPFacade(srv.URL, time.Second).FetchTrend(context.Background(), "EUR", 30)
			assert.ErrorIs(t, err, models.ErrParseFailure)
		})
	}
}
