// Package main is the entry point for the markview CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/markview/internal/cli"
	"github.com/yaklabco/markview/internal/logging"
)

// Build-time variables set via ldflags (see stavefile.go).
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Batch failures were already reported per file.
		if !errors.Is(err, cli.ErrExportFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
