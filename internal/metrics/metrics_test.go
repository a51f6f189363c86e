package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/dbpinger/internal/checker"
	"github.com/aatumaykin/dbpinger/internal/config"
)

func TestNewPusherDisabled(t *testing.T) {
	assert.Nil(t, NewPusher(config.MetricsConfig{}, nil))
}

func TestRecord(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPusher(config.MetricsConfig{PushgatewayURL: srv.URL, Job: "dbpinger"}, srv.Client())
	require.NotNil(t, p)

	err := p.Record(context.Background(), checker.Report{
		ID:       "id",
		Backend:  "mongodb",
		Started:  time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		Duration: 120 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/dbpinger/backend/mongodb", gotPath)
}

func TestRecordFailedCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPusher(config.MetricsConfig{PushgatewayURL: srv.URL, Job: "dbpinger"}, nil)
	err := p.Record(context.Background(), checker.Report{Backend: "redis", Err: errors.New("refused")})
	assert.NoError(t, err)
}

func TestRecordGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewPusher(config.MetricsConfig{PushgatewayURL: srv.URL, Job: "dbpinger"}, srv.Client())
	err := p.Record(context.Background(), checker.Report{Backend: "redis"})
	assert.ErrorContains(t, err, "failed to push metrics")
}
