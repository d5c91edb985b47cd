// Package cli provides the Cobra command structure for markview.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markview/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root markview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "markview",
		Short: "Preview and export lightweight-markup documents",
		Long: `markview turns plain-text documents written in a lightweight Markdown
dialect into a styled HTML preview, paginated PDF, or a DOCX document.

Headings, paragraphs, fenced code, list items and rules are recognised line
by line; bold, italic, inline code and links are styled per output format.
The HTML preview additionally understands the full GFM grammar.`,
		Version: info.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newNodesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
