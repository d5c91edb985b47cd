package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markview/internal/configloader"
	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/fsutil"
)

// stdinArg names standard input as a source.
const stdinArg = "-"

// loadConfig resolves the effective configuration with cliCfg on top.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	return result.Config, nil
}

// readSource reads a file, or standard input for "-" or no argument.
func readSource(cmd *cobra.Command, arg string) (string, error) {
	if arg == "" || arg == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, _, err := fsutil.ReadFile(commandContext(cmd), arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// colorMode returns the --color flag value.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}

// boolFlag returns a pointer to v when the flag was given, nil otherwise,
// so unset flags leave lower layers in charge.
func boolFlag(cmd *cobra.Command, name string, v bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return config.Bool(v)
}
