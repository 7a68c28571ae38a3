// internal/metrics/recorder.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-layer-dive/internal/event"
)

const namespace = "dive"

// Recorder turns game events into Prometheus metrics. It only listens and
// never feeds anything back into the game.
type Recorder struct {
	runs       prometheus.Counter
	dives      *prometheus.CounterVec
	shiftFails prometheus.Counter
	warnings   prometheus.Counter
	expiries   prometheus.Counter
	charges    prometheus.Counter
	depth      prometheus.Gauge
	lastScore  prometheus.Gauge
}

// NewRecorder creates the metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_started_total",
			Help:      "Runs started since launch.",
		}),
		dives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dives_total",
			Help:      "Completed layer shifts, split by penalty.",
		}, []string{"penalized"}),
		shiftFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shift_failures_total",
			Help:      "Shifts aborted because of content errors.",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "time_warnings_total",
			Help:      "Low-time warnings shown.",
		}),
		expiries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timer_expiries_total",
			Help:      "Runs ended by the layer timer.",
		}),
		charges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charges_collected_total",
			Help:      "Charges picked up from reward clusters.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_depth",
			Help:      "Depth of the run in progress.",
		}),
		lastScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_score",
			Help:      "Score of the last finished run.",
		}),
	}
	reg.MustRegister(r.runs, r.dives, r.shiftFails, r.warnings, r.expiries, r.charges, r.depth, r.lastScore)
	return r
}

// Attach subscribes the recorder to every event it understands.
func (r *Recorder) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.RunStarted, event.LayerShifted, event.ShiftFailed, event.TimeWarning,
		event.TimeExpired, event.RewardCollected, event.RunEnded,
	} {
		d.Subscribe(t, r)
	}
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		r.runs.Inc()
		r.depth.Set(1)
	case event.LayerShifted:
		penalized := "false"
		if data, ok := e.Data.(event.LayerShiftedData); ok && data.Penalized {
			penalized = "true"
		}
		r.dives.WithLabelValues(penalized).Inc()
		r.depth.Inc()
	case event.ShiftFailed:
		r.shiftFails.Inc()
	case event.TimeWarning:
		r.warnings.Inc()
	case event.TimeExpired:
		r.expiries.Inc()
	case event.RewardCollected:
		if data, ok := e.Data.(event.RewardCollectedData); ok {
			r.charges.Add(float64(data.Value))
		}
	case event.RunEnded:
		if data, ok := e.Data.(event.RunSummary); ok {
			r.lastScore.Set(float64(data.Score))
			r.depth.Set(float64(data.Depth))
		}
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
