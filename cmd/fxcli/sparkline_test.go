package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁█▄", sparkline([]float64{1, 2, 1.5}))
	assert.Equal(t, "▄▄▄", sparkline([]float64{3, 3, 3}))
}

func TestDownsample(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, values, downsample(values, 0))
	assert.Equal(t, values, downsample(values, 20))
	assert.Equal(t, []float64{9}, downsample(values, 1))

	got := downsample(values, 4)
	require.Len(t, got, 4)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 9.0, got[3])
}

func TestSparklineSink_Render(t *testing.T) {
	var buf bytes.Buffer
	sink := newSparklineSink(&buf, 10)

	require.NoError(t, sink.Render([]string{"2026-01-01", "2026-01-02", "2026-01-03"}, []float64{1.0, 1.2, 0.9}))
	assert.Equal(t, "▃█▁  2026-01-01 → 2026-01-03\n", buf.String())

	assert.Error(t, sink.Render([]string{"a"}, []float64{1, 2}))
	assert.Error(t, sink.Render(nil, nil))
}
