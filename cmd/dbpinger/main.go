package main

import (
	"fmt"
	"os"

	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/messages"
	"github.com/aatumaykin/dbpinger/internal/version"
)

var (
	Version   string = constants.DefaultVersion
	BuildTime string = constants.DefaultBuildTime
	GitCommit string = constants.DefaultGitCommit
	GoVersion string = constants.DefaultGoVersion
)

func init() {
	version.SetInfo(Version, BuildTime, GitCommit, GoVersion)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, messages.FormatFailure(err))
		os.Exit(1)
	}
}
