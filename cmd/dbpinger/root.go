package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dbpinger",
	Short: "dbpinger - keep a free-tier database awake",
	Long: `dbpinger connects to the database named by DATABASE_URI, pings it once
and exits. Run it on a schedule (see "dbpinger setup") so idle free-tier
clusters are not paused.

Exit status is 0 when the ping succeeds and 1 otherwise.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          checkHandler,
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setupCmd)
}
