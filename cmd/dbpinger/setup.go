package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/prompt"
	"github.com/aatumaykin/dbpinger/internal/vcs"
	"github.com/aatumaykin/dbpinger/internal/wizard"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate a GitHub Actions workflow that pings the database on a schedule",
	Long: `Interactively pick a weekly, monthly or custom cron schedule and write
.github/workflows/ping.yml plus .env.example. Inside a git repository the
workflow can be committed and pushed right away.`,
	Args: cobra.NoArgs,
	RunE: setupHandler,
}

func setupHandler(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Close()

	out := cmd.OutOrStdout()

	// Ctrl+C outside raw mode arrives as SIGINT
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf(constants.MsgSetupFailed, err)
	}
	fs := afero.NewOsFs()

	w := wizard.New(wizard.Deps{
		Config: cfg,
		Asker:  newAsker(cmd),
		VCS:    vcs.New(wd, vcs.ExecRunner{}, fs),
		Fs:     afero.NewBasePathFs(fs, wd),
		Out:    out,
		Logger: log,
	})

	if _, err := w.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			fmt.Fprint(out, constants.MsgSetupInterrupted)
			return nil
		}
		return fmt.Errorf(constants.MsgSetupFailed, err)
	}
	return nil
}

// newAsker picks the Bubble Tea prompt for terminals and the line prompt otherwise.
var newAsker = func(cmd *cobra.Command) prompt.Asker {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.NewTerminal(os.Stdin, cmd.OutOrStdout())
	}
	return prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout())
}
