package stream

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors updated by the frame loop.
type Metrics struct {
	FramesPublished  prometheus.Counter
	PublishErrors    prometheus.Counter
	CommandsApplied  *prometheus.CounterVec
	CommandsRejected prometheus.Counter
	ChainGroups      prometheus.Gauge
	FrontSize        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mapanim_frames_published_total",
			Help: "Frames published to the stream topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mapanim_publish_errors_total",
			Help: "Frames that failed to publish.",
		}),
		CommandsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mapanim_commands_applied_total",
			Help: "Control commands turned into animations, by type.",
		}, []string{"type"}),
		CommandsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mapanim_commands_rejected_total",
			Help: "Control commands that could not be decoded or applied.",
		}),
		ChainGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mapanim_chain_groups",
			Help: "Animation groups in the chain, the running one included.",
		}),
		FrontSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mapanim_front_group_size",
			Help: "Animations in the running group.",
		}),
	}
	reg.MustRegister(m.FramesPublished, m.PublishErrors, m.CommandsApplied,
		m.CommandsRejected, m.ChainGroups, m.FrontSize)
	return m
}
