package stream

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/mapanim/animation"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	config, err := ReadConfig(strings.NewReader("stream:\n  easing: Linear\n  duration: 1\n"))
	require.NoError(t, err)
	return config
}

func newTestStreamer(t *testing.T) (*Streamer, *animation.System, *Controller, *Metrics) {
	t.Helper()
	config := testConfig(t)
	metrics := NewMetrics(prometheus.NewRegistry())
	system := animation.NewSystem()
	controller := NewController(config, system, metrics)
	s, err := NewStreamer(config, nil, system, controller, metrics)
	require.NoError(t, err)
	return s, system, controller, metrics
}

func point(x, y float64) *animation.Point {
	return &animation.Point{X: x, Y: y}
}
