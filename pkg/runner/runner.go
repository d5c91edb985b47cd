package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/pkg/export"
	"github.com/yaklabco/markview/pkg/fsutil"
)

const dirMode os.FileMode = 0o755

// Runner exports many files through one Exporter.
type Runner struct {
	Exporter *export.Exporter
}

// New creates a Runner around exp.
func New(exp *export.Exporter) *Runner {
	return &Runner{Exporter: exp}
}

// Run discovers sources under opts.Paths and exports each one concurrently.
// Outcomes are ordered by source path regardless of completion order. A
// failing file does not stop the others.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	if _, err := export.ParseTarget(string(opts.Target)); err != nil {
		return nil, err
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered sources", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	outDir := opts.OutDir
	if outDir != "" {
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(workDir, outDir)
		}
		if err := os.MkdirAll(outDir, dirMode); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Target, workDir, outDir)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	logger.Debug("batch export finished",
		logging.FieldFilesExported, result.Stats.FilesExported,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldJobs, jobs,
		logging.FieldDuration, time.Since(start))

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	target export.Target,
	workDir, outDir string,
) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: path}
		outcome.Output, outcome.Error = r.exportFile(ctx, path, target, ArtifactPath(path, workDir, outDir, target))

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) exportFile(ctx context.Context, path string, target export.Target, dest string) (string, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dest), dirMode); err != nil {
		return "", &export.Error{Target: target, Path: dest, Err: err}
	}

	return r.Exporter.Export(ctx, target, string(content), dest)
}

// ArtifactPath returns where the artifact for source is written. Without
// outDir it replaces the source extension in place; with outDir it mirrors
// the source's path relative to workDir, or uses the bare name for sources
// outside workDir.
func ArtifactPath(source, workDir, outDir string, target export.Target) string {
	stem := strings.TrimSuffix(source, filepath.Ext(source))
	if outDir == "" {
		return stem + target.Extension()
	}

	rel, err := filepath.Rel(workDir, stem)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(stem)
	}
	return filepath.Join(outDir, rel) + target.Extension()
}
