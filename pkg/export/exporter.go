// Package export turns source text into artifacts on disk. It selects the
// renderer for a target, appends the target's extension when missing and
// writes the artifact atomically, so a failed export never leaves a
// partial file behind.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/document"
	"github.com/yaklabco/markview/pkg/fsutil"
	"github.com/yaklabco/markview/pkg/render/docx"
	"github.com/yaklabco/markview/pkg/render/flow"
	"github.com/yaklabco/markview/pkg/render/page"
	"github.com/yaklabco/markview/pkg/render/pdf"
	"github.com/yaklabco/markview/pkg/render/preview"
)

// Exporter renders and writes artifacts. It is safe for concurrent use.
type Exporter struct {
	preview  *preview.Renderer
	style    page.Style
	pdf      pdf.Config
	fileMode os.FileMode
	backups  bool
}

// New builds an Exporter from cfg. A nil cfg uses the defaults.
func New(cfg *config.Config) (*Exporter, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	style, err := PageStyle(cfg.Page)
	if err != nil {
		return nil, err
	}

	mode, err := cfg.Export.Mode()
	if err != nil {
		return nil, err
	}

	pdfCfg := PDFConfig(cfg.Page)
	pdfCfg.Title = cfg.Preview.Title

	return &Exporter{
		preview:  preview.New(PreviewOptions(cfg.Preview)...),
		style:    style,
		pdf:      pdfCfg,
		fileMode: mode,
		backups:  cfg.BackupsEnabled(),
	}, nil
}

// Render produces the artifact bytes for target without touching disk.
func (e *Exporter) Render(ctx context.Context, target Target, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Target: target, Err: err}
	}

	logger := logging.FromContext(ctx)
	start := time.Now()

	var (
		buf bytes.Buffer
		err error
	)
	switch target {
	case TargetHTML:
		var html string
		html, err = e.preview.Render(source)
		buf.WriteString(html)

	case TargetPDF:
		nodes := document.BuildText(source)
		cfg := e.pdf
		if cfg.Title == "" {
			cfg.Title = firstHeading(nodes)
		}
		err = pdf.Write(&buf, page.Render(nodes, e.style), cfg)

	case TargetDOCX:
		err = docx.Write(&buf, flow.Render(document.BuildText(source)))

	default:
		err = fmt.Errorf("%w: %q", ErrUnknownTarget, string(target))
	}
	if err != nil {
		return nil, &Error{Target: target, Err: err}
	}

	logger.Debug("rendered artifact",
		logging.FieldTarget, target,
		logging.FieldBytes, buf.Len(),
		logging.FieldDuration, time.Since(start))

	return buf.Bytes(), nil
}

// Export renders source for target and writes it to path, appending the
// target extension when path lacks it. It returns the final path.
func (e *Exporter) Export(ctx context.Context, target Target, source, path string) (string, error) {
	if path == "" {
		return "", &Error{Target: target, Err: ErrEmptyPath}
	}
	path = EnsureExtension(path, target.Extension())

	data, err := e.Render(ctx, target, source)
	if err != nil {
		var exportErr *Error
		if errors.As(err, &exportErr) {
			exportErr.Path = path
		}
		logging.FromContext(ctx).Error("export failed", logging.FieldPath, path, logging.FieldError, err)
		return "", err
	}

	if err := e.write(ctx, path, data); err != nil {
		err = &Error{Target: target, Path: path, Err: err}
		logging.FromContext(ctx).Error("export failed", logging.FieldPath, path, logging.FieldError, err)
		return "", err
	}
	return path, nil
}

// SaveSource writes text to path, appending ".md" when missing.
func (e *Exporter) SaveSource(ctx context.Context, text, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	path = EnsureExtension(path, SourceExtension)

	if err := fsutil.WriteAtomic(ctx, path, []byte(text), 0); err != nil {
		return "", fmt.Errorf("save source %s: %w", path, err)
	}
	logging.FromContext(ctx).Debug("saved source", logging.FieldPath, path)
	return path, nil
}

func (e *Exporter) write(ctx context.Context, path string, data []byte) error {
	logger := logging.FromContext(ctx)

	if e.backups {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return err
		}
		if created {
			logger.Debug("backed up artifact", logging.FieldBackup, fsutil.BackupPath(path))
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, data, e.fileMode); err != nil {
		return err
	}
	logger.Debug("wrote artifact", logging.FieldPath, path, logging.FieldBytes, len(data))
	return nil
}

func firstHeading(nodes []document.Node) string {
	for _, n := range nodes {
		if h, ok := n.(document.Heading); ok {
			return h.Text.Text()
		}
	}
	return ""
}
