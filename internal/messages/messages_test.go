package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFailure(t *testing.T) {
	assert.Equal(t, "❌ DATABASE_URI not configured", FormatFailure(errors.New("DATABASE_URI not configured")))
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		errs []error
		want string
	}{
		{
			name: "no errors",
			errs: nil,
			want: "",
		},
		{
			name: "numbered",
			errs: []error{errors.New("first"), errors.New("second")},
			want: "configuration validation failed:\n  1. first\n  2. second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValidationErrors(tt.errs))
		})
	}
}

func TestFormatScheduleSummary(t *testing.T) {
	got := FormatScheduleSummary("0 0 * * 1", "Every Monday at 12:00 AM UTC", "Mon, 20 Jan 2025 00:00:00 UTC")

	assert.Equal(t, "\n📅 Schedule Configuration:\n"+
		"   Cron: 0 0 * * 1\n"+
		"   Runs: Every Monday at 12:00 AM UTC\n"+
		"   Next: Mon, 20 Jan 2025 00:00:00 UTC\n"+
		"   Timezone: UTC\n\n", got)
}
