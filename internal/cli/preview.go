package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/internal/watch"
	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/export"
	"github.com/yaklabco/markview/pkg/fsutil"
)

type previewFlags struct {
	output      string
	watch       bool
	delay       time.Duration
	flavor      string
	title       string
	toc         bool
	hardWraps   bool
	highlight   bool
	highlightBy string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a document as a styled HTML page",
		Long: `Render a document as a standalone HTML page with the preview stylesheet.

Reads from standard input when no file (or "-") is given. Without --output
the page is written to standard output. With --watch the page is
re-rendered whenever the source settles after a change.

Examples:
  markview preview README.md                 Print HTML to stdout
  markview preview README.md -o readme       Write readme.html
  markview preview README.md -o out --watch  Keep out.html up to date
  cat notes.md | markview preview -o notes   Render standard input`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the page here (.html appended when missing)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when the source changes")
	cmd.Flags().DurationVar(&flags.delay, "delay", watch.DefaultDelay, "idle period before re-rendering in watch mode")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown grammar: gfm, commonmark")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title")
	cmd.Flags().BoolVar(&flags.toc, "toc", true, `replace a "[TOC]" paragraph with a table of contents`)
	cmd.Flags().BoolVar(&flags.hardWraps, "hard-wraps", true, "turn single newlines into line breaks")
	cmd.Flags().BoolVar(&flags.highlight, "highlight", true, "syntax-highlight fenced code")
	cmd.Flags().StringVar(&flags.highlightBy, "highlight-style", "", "chroma style for highlighting")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	var source string
	if len(args) == 1 {
		source = args[0]
	}

	if flags.watch && (source == "" || source == stdinArg || flags.output == "") {
		return fmt.Errorf("%w: --watch needs a source file and --output", ErrUsage)
	}

	cliCfg := &config.Config{
		Preview: config.PreviewConfig{
			Flavor:         config.Flavor(flags.flavor),
			Title:          flags.title,
			HighlightStyle: flags.highlightBy,
			TOC:            boolFlag(cmd, "toc", flags.toc),
			HardWraps:      boolFlag(cmd, "hard-wraps", flags.hardWraps),
			Highlight:      boolFlag(cmd, "highlight", flags.highlight),
		},
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	exp, err := export.New(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	ctx := commandContext(cmd)

	if !flags.watch {
		text, err := readSource(cmd, source)
		if err != nil {
			return err
		}
		return writePreview(ctx, cmd, exp, text, flags.output)
	}

	logger := logging.NewTimestamped(logging.FromContext(ctx).GetLevel().String())
	ctx = logging.WithLogger(ctx, logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := export.EnsureExtension(flags.output, export.TargetHTML.Extension())
	logger.Info("watching", logging.FieldPath, source, logging.FieldOutput, out, logging.FieldDelay, flags.delay)

	return watch.Run(ctx, source, flags.delay, func(ctx context.Context, content []byte) error {
		return writePreview(ctx, cmd, exp, string(content), flags.output)
	})
}

func writePreview(ctx context.Context, cmd *cobra.Command, exp *export.Exporter, text, output string) error {
	html, err := exp.Render(ctx, export.TargetHTML, text)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(html)
		return err
	}

	path := export.EnsureExtension(output, export.TargetHTML.Extension())
	written, err := fsutil.WriteAtomicIfChanged(ctx, path, html, 0)
	if err != nil {
		return &export.Error{Target: export.TargetHTML, Path: path, Err: err}
	}

	logger := logging.FromContext(ctx)
	if written {
		logger.Info("wrote preview", logging.FieldOutput, path, logging.FieldBytes, len(html))
	} else {
		logger.Debug("preview unchanged", logging.FieldOutput, path)
	}
	return nil
}
