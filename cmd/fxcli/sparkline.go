package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparklineSink renders a series as a one-line terminal chart.
type sparklineSink struct {
	w     io.Writer
	width int
}

func newSparklineSink(w io.Writer, width int) *sparklineSink {
	return &sparklineSink{w: w, width: width}
}

// Render implements uistate.ChartSink.
func (s *sparklineSink) Render(labels []string, values []float64) error {
	if len(labels) != len(values) {
		return errors.New("labels and values differ in length")
	}
	if len(values) == 0 {
		return errors.New("nothing to render")
	}

	values = downsample(values, s.width)
	_, err := fmt.Fprintf(s.w, "%s  %s → %s\n", sparkline(values), labels[0], labels[len(labels)-1])
	return err
}

func sparkline(values []float64) string {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	var b strings.Builder
	top := len(sparkRunes) - 1
	for _, v := range values {
		idx := top / 2
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(top))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// downsample keeps at most width values, picking evenly spaced points and
// always the last one.
func downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	if width == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, width)
	step := float64(len(values)-1) / float64(width-1)
	for i := range out {
		out[i] = values[int(float64(i)*step+0.5)]
	}
	return out
}
