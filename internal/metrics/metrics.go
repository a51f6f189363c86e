// Package metrics pushes check results to a Prometheus Pushgateway.
// A scheduled job has nothing to scrape, so the result is pushed once per run.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/aatumaykin/dbpinger/internal/checker"
	"github.com/aatumaykin/dbpinger/internal/config"
)

// Pusher implements checker.Recorder.
type Pusher struct {
	url    string
	job    string
	client push.HTTPDoer
}

// NewPusher returns nil when no Pushgateway is configured.
func NewPusher(cfg config.MetricsConfig, client push.HTTPDoer) *Pusher {
	if cfg.PushgatewayURL == "" {
		return nil
	}
	return &Pusher{url: cfg.PushgatewayURL, job: cfg.Job, client: client}
}

// Record pushes the gauges for r, grouped by backend.
func (p *Pusher) Record(ctx context.Context, r checker.Report) error {
	reg := prometheus.NewRegistry()

	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dbpinger_up",
		Help: "Whether the last database ping succeeded (1) or failed (0).",
	})
	last := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dbpinger_last_check_timestamp_seconds",
		Help: "Unix time of the last database ping.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dbpinger_check_duration_seconds",
		Help: "Duration of the last database ping.",
	})
	reg.MustRegister(up, last, duration)

	if r.OK() {
		up.Set(1)
	}
	last.Set(float64(r.Started.Unix()))
	duration.Set(r.Duration.Seconds())

	pusher := push.New(p.url, p.job).
		Gatherer(reg).
		Grouping("backend", r.Backend)
	if p.client != nil {
		pusher = pusher.Client(p.client)
	}

	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
