// Package wizard implements the interactive "dbpinger setup" flow: it asks
// for a schedule, writes the GitHub Actions workflow and optionally commits
// and pushes it.
//
// The flow is strictly sequential. Questions are data (see questions.go)
// answered by a prompt.Asker, so the whole flow runs unchanged against a
// terminal, a pipe or a script in tests.
package wizard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/aatumaykin/dbpinger/internal/config"
	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/logger"
	"github.com/aatumaykin/dbpinger/internal/messages"
	"github.com/aatumaykin/dbpinger/internal/prompt"
	"github.com/aatumaykin/dbpinger/internal/schedule"
	"github.com/aatumaykin/dbpinger/internal/vcs"
	"github.com/aatumaykin/dbpinger/internal/workflow"
)

// VCS is the subset of *vcs.Git the wizard needs.
type VCS interface {
	IsRepo(ctx context.Context) bool
	HasConfig() bool
	CurrentBranch(ctx context.Context) string
	Commit(ctx context.Context, path, message string) []vcs.StepResult
	Push(ctx context.Context, remote, branch string) vcs.StepResult
}

// Deps holds everything the wizard talks to.
type Deps struct {
	Config *config.Config
	Asker  prompt.Asker
	VCS    VCS
	Fs     afero.Fs
	Out    io.Writer
	Logger *logger.Logger
	Now    func() time.Time
}

// Result summarises a wizard run.
type Result struct {
	// Cancelled is set when the user declined the overwrite or the final confirmation.
	Cancelled bool

	Written     bool
	Expression  schedule.Expression
	Description string
	NextRun     string

	EnvExampleCreated bool
	Committed         bool
	Pushed            bool
	Advisories        []vcs.StepResult
}

// Wizard runs the setup flow.
type Wizard struct {
	cfg   *config.Config
	asker prompt.Asker
	vcs   VCS
	fs    afero.Fs
	out   io.Writer
	log   *logger.Logger
	now   func() time.Time
}

// New creates a wizard. Nil Logger and Now fall back to a no-op logger and time.Now.
func New(d Deps) *Wizard {
	w := &Wizard{
		cfg:   d.Config,
		asker: d.Asker,
		vcs:   d.VCS,
		fs:    d.Fs,
		out:   d.Out,
		log:   d.Logger,
		now:   d.Now,
	}
	if w.log == nil {
		w.log = logger.Nop()
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.out == nil {
		w.out = io.Discard
	}
	return w
}

// Run executes the flow. prompt.ErrInterrupted is returned untouched so the
// caller can treat Ctrl+C as a clean exit. A declined confirmation is not an
// error: Result.Cancelled is set instead.
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	path := w.cfg.Workflow.Path

	w.printf(constants.MsgSetupBanner)

	proceed, err := w.confirmOverwrite(ctx, path)
	if err != nil {
		return res, err
	}
	if !proceed {
		w.printf(constants.MsgOverwriteDeclined)
		res.Cancelled = true
		return res, nil
	}

	choice, err := w.askChoice(ctx)
	if err != nil {
		return res, err
	}

	expr, err := schedule.Derive(choice)
	if err != nil {
		return res, err
	}
	desc := schedule.Describe(expr, choice.Frequency, choice.Label())
	if choice.Time != nil {
		desc = schedule.ApplyTime(desc, *choice.Time)
	}

	res.Expression = expr
	res.Description = desc
	res.NextRun = w.nextRun(expr)

	fmt.Fprint(w.out, messages.FormatScheduleSummary(expr.String(), desc, res.NextRun))

	ok, err := w.confirm(ctx, confirmQuestion())
	if err != nil {
		return res, err
	}
	if !ok {
		w.printf(constants.MsgSetupDeclined)
		res.Cancelled = true
		return res, nil
	}

	data, err := workflow.Render(w.cfg.Workflow, w.cfg.Database.URIEnv, expr)
	if err != nil {
		return res, err
	}
	if err := workflow.Write(w.fs, path, data); err != nil {
		return res, err
	}
	res.Written = true
	w.printf(constants.MsgWorkflowCreated, path)
	w.log.Info("Workflow written",
		logger.Field{Key: "path", Value: path},
		logger.Field{Key: "cron", Value: expr.String()})

	repo := w.vcs != nil && w.vcs.IsRepo(ctx)
	if repo {
		if err := w.gitSteps(ctx, path, res); err != nil {
			return res, err
		}
	}

	created, err := workflow.WriteIfAbsent(w.fs, w.cfg.EnvExample.Path,
		workflow.EnvExample(w.cfg.Database.URIEnv, w.cfg.EnvExample.Placeholder))
	if err != nil {
		return res, err
	}
	if created {
		res.EnvExampleCreated = true
		w.printf(constants.MsgEnvExampleCreated, w.cfg.EnvExample.Path)
	}

	w.printNextSteps(path, res.NextRun, !repo || !w.vcs.HasConfig())

	return res, nil
}

// confirmOverwrite returns true when there is nothing to overwrite or the
// user agreed to replace the existing workflow.
func (w *Wizard) confirmOverwrite(ctx context.Context, path string) (bool, error) {
	exists, err := workflow.Exists(w.fs, path)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	if crons, err := workflow.ReadSchedules(w.fs, path); err == nil && len(crons) > 0 {
		w.printf(constants.MsgExistingSchedule, strings.Join(crons, ", "))
	} else if err != nil {
		w.log.Debug("Existing workflow not readable", logger.Field{Key: "error", Value: err.Error()})
	}

	return w.confirm(ctx, overwriteQuestion())
}

func (w *Wizard) askChoice(ctx context.Context) (schedule.Choice, error) {
	var choice schedule.Choice

	a, err := w.asker.Ask(ctx, frequencyQuestion())
	if err != nil {
		return choice, err
	}
	choice.Frequency = schedule.Frequency(a.Value)

	switch choice.Frequency {
	case schedule.Weekly:
		a, err := w.asker.Ask(ctx, dayQuestion())
		if err != nil {
			return choice, err
		}
		if choice.Weekday, err = schedule.ParseWeekday(a.Value); err != nil {
			return choice, err
		}
	case schedule.Monthly:
		a, err := w.asker.Ask(ctx, dateQuestion())
		if err != nil {
			return choice, err
		}
		if choice.DayOfMonth, err = schedule.ParseDayOfMonth(a.Value); err != nil {
			return choice, err
		}
		if choice.DayOfMonth > 28 {
			w.printf(constants.MsgShortMonthWarning)
		}
	case schedule.Custom:
		a, err := w.asker.Ask(ctx, customCronQuestion())
		if err != nil {
			return choice, err
		}
		choice.Raw = a.Value
	default:
		return choice, fmt.Errorf("unknown frequency: %q", a.Value)
	}

	custom, err := w.confirm(ctx, customTimeQuestion())
	if err != nil || !custom {
		return choice, err
	}

	t, err := w.askTime(ctx)
	if err != nil {
		return choice, err
	}
	choice.Time = &t
	return choice, nil
}

func (w *Wizard) askTime(ctx context.Context) (schedule.TimeOfDay, error) {
	var t schedule.TimeOfDay

	a, err := w.asker.Ask(ctx, hourQuestion())
	if err != nil {
		return t, err
	}
	if t.Hour, err = schedule.ParseHour(a.Value); err != nil {
		return t, err
	}

	a, err = w.asker.Ask(ctx, minuteQuestion())
	if err != nil {
		return t, err
	}
	if t.Minute, err = schedule.ParseMinute(a.Value); err != nil {
		return t, err
	}
	return t, nil
}

// gitSteps commits and pushes the workflow. Git failures never fail the run.
func (w *Wizard) gitSteps(ctx context.Context, path string, res *Result) error {
	commit, err := w.confirm(ctx, commitQuestion())
	if err != nil || !commit {
		return err
	}

	for _, r := range w.vcs.Commit(ctx, path, w.cfg.Git.CommitMessage) {
		if r.Advisory() {
			w.advise(res, r)
			return nil
		}
	}
	res.Committed = true
	w.printf(constants.MsgWorkflowCommitted)

	branch := w.vcs.CurrentBranch(ctx)
	push, err := w.confirm(ctx, pushQuestion(branch))
	if err != nil || !push {
		return err
	}

	if r := w.vcs.Push(ctx, w.cfg.Git.Remote, branch); r.Advisory() {
		w.advise(res, r)
		return nil
	}
	res.Pushed = true
	w.printf(constants.MsgWorkflowPushed)
	return nil
}

func (w *Wizard) advise(res *Result, r vcs.StepResult) {
	res.Advisories = append(res.Advisories, r)
	w.log.WarnErr("Git step failed", r.Err, logger.Field{Key: "step", Value: string(r.Step)})
	w.printf(constants.MsgGitFailed)
}

func (w *Wizard) confirm(ctx context.Context, q prompt.Question) (bool, error) {
	a, err := w.asker.Ask(ctx, q)
	if err != nil {
		return false, err
	}
	return a.Yes, nil
}

func (w *Wizard) nextRun(expr schedule.Expression) string {
	next, ok := schedule.NextRun(expr, w.now())
	if !ok {
		return constants.MsgNextRunUnknown
	}
	return schedule.FormatRun(next)
}

func (w *Wizard) printNextSteps(path, nextRun string, manualCommit bool) {
	secret := w.cfg.Workflow.SecretName

	w.printf("\n%s\n%s\n%s\n", constants.MsgRule, constants.MsgSetupComplete, constants.MsgRule)
	w.printf(constants.MsgNextSteps)
	w.printf(constants.MsgStepSecret, secret)
	if manualCommit {
		w.printf(constants.MsgStepCommit, path, w.cfg.Git.CommitMessage)
	}
	w.printf(constants.MsgStepTest, w.cfg.Workflow.Name)
	w.printf(constants.MsgStepMonitor, nextRun)
	w.printf(constants.MsgStepLocal, w.cfg.Database.URIEnv)
	w.printf(constants.MsgStepLinks)
	w.printf("\n%s\n\n", constants.MsgRule)
}

func (w *Wizard) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}
