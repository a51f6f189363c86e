// Package version holds build information injected via -ldflags.
package version

import (
	"fmt"
	"io"

	"github.com/aatumaykin/dbpinger/internal/constants"
)

var (
	Version   = constants.DefaultVersion
	BuildTime = constants.DefaultBuildTime
	GitCommit = constants.DefaultGitCommit
	GoVersion = constants.DefaultGoVersion
)

func SetInfo(v, bt, gc, gv string) {
	if v != "" {
		Version = v
	}
	if bt != "" {
		BuildTime = bt
	}
	if gc != "" {
		GitCommit = gc
	}
	if gv != "" {
		GoVersion = gv
	}
}

// Fprint writes the version block shown by `dbpinger version`.
func Fprint(w io.Writer) {
	fmt.Fprintln(w, "dbpinger - database liveness check and GitHub Actions scheduler")
	fmt.Fprintf(w, "Version: %s\n", Version)
	fmt.Fprintf(w, "Build Time: %s\n", BuildTime)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
	fmt.Fprintf(w, "Go Version: %s\n", GoVersion)
}
