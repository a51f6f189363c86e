// Package checker performs the one-shot database liveness probe:
// connect, ping, report, disconnect. There is a single attempt and no
// retry; the probe fails fast with whatever the driver reports.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aatumaykin/dbpinger/internal/config"
	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/logger"
)

// ErrMissingURI is returned when no connection string is configured.
var ErrMissingURI = errors.New("not configured")

// Report describes one check.
type Report struct {
	ID       string
	Backend  string
	Started  time.Time
	Duration time.Duration
	Err      error
}

// OK reports whether the probe succeeded.
func (r Report) OK() bool { return r.Err == nil }

// Recorder receives the report of every check that reached the network.
type Recorder interface {
	Record(ctx context.Context, r Report) error
}

// Checker runs the liveness probe against the configured database.
type Checker struct {
	cfg      config.DatabaseConfig
	backends map[string]Backend
	recorder Recorder
	log      *logger.Logger
	out      io.Writer
	now      func() time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithBackends replaces the scheme registry.
func WithBackends(b map[string]Backend) Option {
	return func(c *Checker) { c.backends = b }
}

// WithRecorder sets where reports are sent after the probe.
func WithRecorder(r Recorder) Option {
	return func(c *Checker) { c.recorder = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// WithOutput sets where the success line is printed.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) { c.out = w }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// New creates a Checker for cfg.
func New(cfg config.DatabaseConfig, opts ...Option) *Checker {
	c := &Checker{
		cfg:      cfg,
		backends: DefaultBackends(),
		log:      logger.Nop(),
		out:      os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs the probe once. A missing URI or an unknown scheme fail
// before any network call. Once a connection is open it is always
// closed, also when the ping fails.
func (c *Checker) Check(ctx context.Context) (Report, error) {
	report := Report{ID: uuid.NewString()}
	log := c.log.With(logger.Field{Key: "check_id", Value: report.ID})

	if c.cfg.URI == "" {
		report.Err = fmt.Errorf("%s %w", c.cfg.URIEnv, ErrMissingURI)
		return report, report.Err
	}

	backend, err := Lookup(c.backends, c.cfg.URI)
	if err != nil {
		report.Err = err
		return report, err
	}
	report.Backend = backend.ID
	log = log.With(
		logger.Field{Key: "backend", Value: backend.ID},
		logger.Field{Key: "uri", Value: config.MaskURI(c.cfg.URI)},
	)

	report.Started = c.now()
	report.Err = c.probe(ctx, log, backend)
	report.Duration = c.now().Sub(report.Started)

	if report.Err != nil {
		log.Error("Ping failed", report.Err, logger.Field{Key: "duration", Value: report.Duration})
	} else {
		log.Info("Ping succeeded", logger.Field{Key: "duration", Value: report.Duration})
		fmt.Fprintf(c.out, constants.MsgPingSuccess, backend.Name)
	}

	c.record(ctx, log, report)

	if report.Err != nil {
		return report, fmt.Errorf("%s ping failed: %w", backend.Name, report.Err)
	}
	return report, nil
}

func (c *Checker) probe(ctx context.Context, log *logger.Logger, backend Backend) error {
	conn, err := backend.Dial(ctx, c.cfg.URI)
	if err != nil {
		return err
	}

	pingErr := conn.Ping(ctx)

	if err := conn.Close(ctx); err != nil {
		log.WarnErr("Disconnect failed", err)
	}

	return pingErr
}

func (c *Checker) record(ctx context.Context, log *logger.Logger, r Report) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(ctx, r); err != nil {
		log.WarnErr("Failed to record check result", err)
	}
}
