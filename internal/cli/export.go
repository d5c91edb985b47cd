package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/internal/ui/pretty"
	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/export"
	"github.com/yaklabco/markview/pkg/runner"
)

type exportFlags struct {
	to         string
	output     string
	saveSource string
	ignore     []string
	follow     bool
	quiet      bool
	pageSize   string
	captions   bool
}

func newExportCommand() *cobra.Command {
	var cfg config.Config
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [paths...]",
		Short: "Export documents to HTML, PDF or DOCX",
		Long:  exportLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.to, "to", "t", "", "target format: html, pdf, docx (default: from --output, else pdf)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "artifact path for a single source (extension appended when missing)")
	cmd.Flags().StringVar(&flags.saveSource, "save-source", "", "also save the source text here (.md appended when missing)")
	cmd.Flags().StringVar(&cfg.OutDir, "out-dir", "", "write batch artifacts under this directory")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip in batch mode")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "do not keep the replaced artifact as .bak")
	cmd.Flags().StringVar(&flags.pageSize, "page-size", "", "PDF page size: A3, A4, A5, Letter, Legal")
	cmd.Flags().BoolVar(&flags.captions, "code-captions", false, "label PDF code blocks with their language")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print only failures and a one-line summary")

	return cmd
}

const exportLongDescription = `Export documents to HTML, PDF or DOCX.

With --output, exports one source (a file, or standard input for "-") to
that path. Otherwise every .md and .markdown file under the given paths is
exported next to its source, or under --out-dir. The target extension is
appended to an output path that lacks it. A failed export leaves any
existing artifact untouched.

Examples:
  markview export README.md -o readme.pdf        Single file, target from extension
  markview export - --to docx -o notes           Standard input to notes.docx
  markview export docs/ --to html --out-dir site Batch export a directory
  markview export --to pdf --ignore "drafts/**"  Batch export the current directory`

func runExport(cmd *cobra.Command, args []string, cfg *config.Config, flags *exportFlags) error {
	target, err := resolveTarget(flags.to, flags.output)
	if err != nil {
		return err
	}

	if flags.output != "" && len(args) > 1 {
		return fmt.Errorf("%w: --output takes a single source", ErrUsage)
	}
	if flags.output == "" && len(args) == 1 && args[0] == stdinArg {
		return fmt.Errorf("%w: standard input needs --output", ErrUsage)
	}
	if flags.saveSource != "" && flags.output == "" {
		return fmt.Errorf("%w: --save-source needs --output", ErrUsage)
	}

	cfg.Ignore = flags.ignore
	cfg.Page.Size = flags.pageSize
	cfg.Page.CodeCaptions = boolFlag(cmd, "code-captions", flags.captions)

	finalCfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	exp, err := export.New(finalCfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	if flags.output != "" {
		source := stdinArg
		if len(args) == 1 {
			source = args[0]
		}
		return exportOne(cmd, exp, target, source, flags)
	}

	return exportBatch(cmd, exp, finalCfg, target, args, flags)
}

// resolveTarget picks the target from --to, then from the output
// extension, then falls back to PDF.
func resolveTarget(to, output string) (export.Target, error) {
	if to != "" {
		target, err := export.ParseTarget(to)
		if err != nil {
			return "", err
		}
		return target, nil
	}
	if ext := filepath.Ext(output); ext != "" {
		if target, err := export.ParseTarget(ext); err == nil {
			return target, nil
		}
	}
	return export.TargetPDF, nil
}

func exportOne(cmd *cobra.Command, exp *export.Exporter, target export.Target, source string, flags *exportFlags) error {
	ctx := commandContext(cmd)

	text, err := readSource(cmd, source)
	if err != nil {
		return err
	}

	if flags.saveSource != "" {
		saved, err := exp.SaveSource(ctx, text, flags.saveSource)
		if err != nil {
			return err
		}
		logging.FromContext(ctx).Debug("saved source", logging.FieldPath, saved)
	}

	path, err := exp.Export(ctx, target, text, flags.output)
	if err != nil {
		return err
	}

	if !flags.quiet {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), cmd.OutOrStdout()))
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatOutcome(runner.FileOutcome{Path: source, Output: path}))
	}
	return nil
}

func exportBatch(
	cmd *cobra.Command,
	exp *export.Exporter,
	cfg *config.Config,
	target export.Target,
	paths []string,
	flags *exportFlags,
) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	start := time.Now()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	opts := runner.Options{
		Paths:          paths,
		WorkingDir:     workDir,
		Ignore:         cfg.Ignore,
		FollowSymlinks: flags.follow,
		Jobs:           cfg.Jobs,
		Target:         target,
		OutDir:         cfg.OutDir,
	}

	logger.Debug("starting batch export",
		"paths", opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldTarget, target,
		logging.FieldJobs, opts.Jobs)

	result, err := runner.New(exp).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("batch export: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	for _, f := range result.Files {
		if flags.quiet && f.Error == nil {
			continue
		}
		fmt.Fprint(out, styles.FormatOutcome(f))
	}
	if flags.quiet {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummary(result.Stats, time.Since(start).Round(time.Millisecond).String()))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrExportFailed
	}
	return nil
}
