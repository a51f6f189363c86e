package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/dbpinger/internal/checker"
	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/prompt"
)

func TestCommandStructure(t *testing.T) {
	assert.Equal(t, "dbpinger", rootCmd.Use)
	assert.NotNil(t, rootCmd.RunE, "root command runs the check")

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "setup")
	assert.Contains(t, names, "version")
}

// execute runs the root command in a fresh working directory.
func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err = rootCmd.Execute()
	return out.String(), err
}

func lineAsker(t *testing.T) {
	t.Helper()
	orig := newAsker
	newAsker = func(cmd *cobra.Command) prompt.Asker {
		return prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	t.Cleanup(func() { newAsker = orig })
}

func TestCheckMissingURI(t *testing.T) {
	t.Setenv(constants.DefaultURIEnv, "")

	_, err := execute(t, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, checker.ErrMissingURI)
	assert.Equal(t, "DATABASE_URI not configured", err.Error())
}

func TestCheckUnknownScheme(t *testing.T) {
	t.Setenv(constants.DefaultURIEnv, "mysql://localhost:3306/app")

	_, err := execute(t, "")
	assert.ErrorContains(t, err, "unsupported")
}

func TestCheckRejectsArgs(t *testing.T) {
	_, err := execute(t, "", "ping")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: ")
	assert.Contains(t, out, "Git Commit: ")
}

func TestSetupWritesWorkflow(t *testing.T) {
	lineAsker(t)

	out, err := execute(t, "Weekly\nMonday\n\n\n", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Every Monday at 12:00 AM UTC")

	wd, err := os.Getwd()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(wd, constants.WorkflowPath))
	require.NoError(t, err)
	assert.Contains(t, string(data), `- cron: "0 0 * * 1"`)

	_, err = os.Stat(filepath.Join(wd, constants.EnvExamplePath))
	assert.NoError(t, err)
}

func TestSetupInterruptIsClean(t *testing.T) {
	lineAsker(t)

	out, err := execute(t, "Weekly\n", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Setup cancelled by user")

	_, err = os.Stat(constants.WorkflowPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSetupCancelledContextIsClean(t *testing.T) {
	lineAsker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	setupCmd.SetContext(ctx)
	t.Cleanup(func() { setupCmd.SetContext(context.Background()) })

	out, err := execute(t, "Weekly\nMonday\n\n\n", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Setup cancelled by user")

	_, err = os.Stat(constants.WorkflowPath)
	assert.True(t, os.IsNotExist(err))
}
