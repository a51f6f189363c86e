// Package vcs wraps the handful of git commands the setup wizard runs.
//
// Every step is best effort: failures come back as StepResult values the
// caller reports as warnings. Nothing here rolls back files.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aatumaykin/dbpinger/internal/constants"
)

// Runner executes an external command in dir and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}

// Step names a git operation.
type Step string

const (
	StepAdd    Step = "add"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// StepResult is the outcome of one git step. A failed step is advisory:
// the workflow file that was already written stays authoritative.
type StepResult struct {
	Step Step
	Err  error
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool { return r.Err == nil }

// Advisory reports whether the result carries a warning to show.
func (r StepResult) Advisory() bool { return r.Err != nil }

// Git runs git commands in a working directory.
type Git struct {
	dir    string
	runner Runner
	fs     afero.Fs
}

// New creates a Git bound to dir. fs is used to look for .git/config.
func New(dir string, runner Runner, fs afero.Fs) *Git {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Git{dir: dir, runner: runner, fs: fs}
}

func (g *Git) git(ctx context.Context, args ...string) ([]byte, error) {
	return g.runner.Run(ctx, g.dir, "git", args...)
}

// IsRepo reports whether dir is inside a git work tree.
func (g *Git) IsRepo(ctx context.Context) bool {
	_, err := g.git(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// HasConfig reports whether .git/config exists in dir.
func (g *Git) HasConfig() bool {
	ok, err := afero.Exists(g.fs, filepath.Join(g.dir, constants.GitConfigPath))
	return err == nil && ok
}

// CurrentBranch returns the checked out branch, or "main" when it cannot
// be determined (detached HEAD, git failure).
func (g *Git) CurrentBranch(ctx context.Context) string {
	out, err := g.git(ctx, "branch", "--show-current")
	branch := strings.TrimSpace(string(out))
	if err != nil || branch == "" {
		return constants.DefaultBranch
	}
	return branch
}

// Commit stages path and commits it. It stops at the first failing step.
func (g *Git) Commit(ctx context.Context, path, message string) []StepResult {
	if _, err := g.git(ctx, "add", path); err != nil {
		return []StepResult{{Step: StepAdd, Err: err}}
	}
	results := []StepResult{{Step: StepAdd}}

	_, err := g.git(ctx, "commit", "-m", message)
	return append(results, StepResult{Step: StepCommit, Err: err})
}

// Push pushes branch to remote.
func (g *Git) Push(ctx context.Context, remote, branch string) StepResult {
	_, err := g.git(ctx, "push", remote, branch)
	return StepResult{Step: StepPush, Err: err}
}
