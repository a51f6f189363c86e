package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithValidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "json stdout",
			config: Config{Level: "debug", Format: "json", Output: "stdout"},
		},
		{
			name:   "text stderr",
			config: Config{Level: "info", Format: "text", Output: "stderr"},
		},
		{
			name:   "discard",
			config: Config{Level: "warn", Format: "text", Output: "discard"},
		},
		{
			name:   "empty output and format fall back to stderr text",
			config: Config{Level: "error"},
		},
		{
			name:    "invalid level",
			config:  Config{Level: "loud", Format: "json", Output: "stdout"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  Config{Level: "debug", Format: "xml", Output: "stdout"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.NoError(t, log.Close())
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dbpinger.log")

	log, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	log.Info("written to file")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}

func TestLogger_JSONFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "json", "debug")
	require.NoError(t, err)

	log.With(Field{Key: "check_id", Value: "abc"}).
		Error("ping failed", errors.New("connection refused"), Field{Key: "backend", Value: "redis"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ping failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "abc", entry["check_id"])
	assert.Equal(t, "redis", entry["backend"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "text", "warn")
	require.NoError(t, err)

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.InfoCtx(context.Background(), "hidden info ctx")
	log.Warn("shown warn")
	log.WarnErr("shown advisory", errors.New("git push rejected"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "git push rejected")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "warning", "Error"} {
		_, ok := ParseLevel(lvl)
		assert.True(t, ok, lvl)
	}
	_, ok := ParseLevel("trace")
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("nothing", errors.New("x"))
	assert.NoError(t, log.Close())
}
