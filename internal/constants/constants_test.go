package constants

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathConstants(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "DefaultEnvPath", value: DefaultEnvPath},
		{name: "DefaultConfigPath", value: DefaultConfigPath},
		{name: "WorkflowPath", value: WorkflowPath},
		{name: "EnvExamplePath", value: EnvExamplePath},
		{name: "GitConfigPath", value: GitConfigPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s should not be empty", tt.name)
			}
			if filepath.IsAbs(tt.value) {
				t.Errorf("%s should be relative, got: %s", tt.name, tt.value)
			}
		})
	}
}

func TestWorkflowPath(t *testing.T) {
	if WorkflowPath != ".github/workflows/ping.yml" {
		t.Errorf("WorkflowPath = %s, want '.github/workflows/ping.yml'", WorkflowPath)
	}
}

func TestSetupActionPinned(t *testing.T) {
	if !strings.Contains(DefaultSetupAction, "@v") {
		t.Errorf("DefaultSetupAction should be pinned to a major version, got: %s", DefaultSetupAction)
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"ping success", MsgPingSuccess, []any{"MongoDB"}, "✅ MongoDB ping successful\n"},
		{"push prompt", MsgPushPrompt, []any{"main"}, "Push to remote (main)?"},
		{"local step", MsgStepLocal, []any{"DATABASE_URI"}, "\n💡 Test locally first:\n   DATABASE_URI='your_uri' dbpinger\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, tt.args...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSecretStepNamesSecretTwice(t *testing.T) {
	got := fmt.Sprintf(MsgStepSecret, "DATABASE_URI")
	if n := strings.Count(got, "DATABASE_URI"); n != 2 {
		t.Errorf("secret name appears %d times, want 2", n)
	}
}
