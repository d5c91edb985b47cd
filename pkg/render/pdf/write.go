// Package pdf lays page-flow instructions out on fixed-size pages and
// writes the result as a PDF document. Page breaks are automatic.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/yaklabco/markview/pkg/render/page"
)

const (
	captionFont  = page.FontBody
	captionScale = 0.85
	// maxIndentShare is the largest share of the content width an
	// indent may take.
	maxIndentShare = 0.5
)

// layout carries the writer state for one document.
type layout struct {
	pdf *fpdf.Fpdf
	cfg Config
	tr  func(string) string
}

// Write lays out instrs and writes the PDF to w. Nothing is written to w
// unless layout succeeds.
func Write(w io.Writer, instrs []page.Instruction, cfg Config) error {
	cfg = applyDefaults(cfg)

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margins.Left, cfg.Margins.Top, cfg.Margins.Right)
	doc.SetAutoPageBreak(true, cfg.Margins.Bottom)
	doc.SetCreator(cfg.Creator, true)
	if cfg.Title != "" {
		doc.SetTitle(cfg.Title, true)
	}
	doc.AddPage()

	l := &layout{
		pdf: doc,
		cfg: cfg,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}

	for _, in := range instrs {
		switch in := in.(type) {
		case page.Paragraph:
			l.paragraph(in)
		case page.Preformatted:
			l.preformatted(in)
		case page.Spacer:
			doc.Ln(in.Height)
		case page.HorizontalRule:
			l.rule(in)
		}
		if doc.Err() {
			break
		}
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf: layout: %w", err)
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

func (l *layout) contentWidth() float64 {
	pageW, _ := l.pdf.GetPageSize()
	return pageW - l.cfg.Margins.Left - l.cfg.Margins.Right
}

func (l *layout) indent(v float64) float64 {
	return min(max(v, 0), l.contentWidth()*maxIndentShare)
}

func (l *layout) lineHeight(size float64) float64 {
	return size * l.cfg.LineHeight
}

func (l *layout) paragraph(p page.Paragraph) {
	if p.Style.SpaceBefore > 0 {
		l.pdf.Ln(p.Style.SpaceBefore)
	}

	left := l.cfg.Margins.Left + l.indent(p.Indent)
	l.pdf.SetLeftMargin(left)
	l.pdf.SetX(left)
	defer l.pdf.SetLeftMargin(l.cfg.Margins.Left)

	lh := l.lineHeight(p.Style.Size)
	rightEdge := l.cfg.Margins.Left + l.contentWidth()

	for _, s := range p.Spans {
		size := s.Size
		if size == 0 {
			size = p.Style.Size
		}
		l.pdf.SetFont(s.Font, fontStyle(s.Bold, s.Italic), size)
		l.pdf.SetTextColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
		text := l.tr(s.Text)

		switch {
		case s.Filled:
			l.pdf.SetFillColor(int(s.Background.R), int(s.Background.G), int(s.Background.B))
			width := l.pdf.GetStringWidth(text) + 2*l.pdf.GetCellMargin()
			if l.pdf.GetX()+width > rightEdge {
				l.pdf.Ln(lh)
			}
			l.pdf.CellFormat(width, lh, text, "", 0, "L", true, 0, "")
		case s.Link != "":
			l.pdf.WriteLinkString(lh, text, s.Link)
		default:
			l.pdf.Write(lh, text)
		}
	}
	l.pdf.Ln(lh)

	if p.Style.SpaceAfter > 0 {
		l.pdf.Ln(p.Style.SpaceAfter)
	}
}

func (l *layout) preformatted(b page.Preformatted) {
	indent := l.indent(b.Indent)
	left := l.cfg.Margins.Left + indent
	width := l.contentWidth() - indent

	if b.Caption != "" {
		l.pdf.SetFont(captionFont, "I", b.Size*captionScale)
		l.pdf.SetTextColor(int(b.Border.R)/2, int(b.Border.G)/2, int(b.Border.B)/2) //nolint:mnd // darker than the border
		l.pdf.SetX(left)
		l.pdf.CellFormat(width, l.lineHeight(b.Size*captionScale), l.tr(b.Caption), "", 1, "L", false, 0, "")
	}

	l.pdf.SetFont(b.Font, "", b.Size)
	l.pdf.SetTextColor(0, 0, 0)
	l.pdf.SetFillColor(int(b.Background.R), int(b.Background.G), int(b.Background.B))
	l.pdf.SetDrawColor(int(b.Border.R), int(b.Border.G), int(b.Border.B))

	margin := l.pdf.GetCellMargin()
	l.pdf.SetCellMargin(b.Padding)
	defer l.pdf.SetCellMargin(margin)

	// Tabs have no glyph in the core fonts.
	text := strings.ReplaceAll(strings.Join(b.Lines, "\n"), "\t", "    ")

	l.pdf.SetX(left)
	l.pdf.MultiCell(width, l.lineHeight(b.Size), l.tr(text), "1", "L", true)
}

func (l *layout) rule(r page.HorizontalRule) {
	_, pageH := l.pdf.GetPageSize()
	if l.pdf.GetY()+r.Thickness > pageH-l.cfg.Margins.Bottom {
		l.pdf.AddPage()
	}

	width := l.contentWidth() * r.WidthPercent / 100 //nolint:mnd // percent
	y := l.pdf.GetY()

	l.pdf.SetDrawColor(int(r.Color.R), int(r.Color.G), int(r.Color.B))
	l.pdf.SetLineWidth(r.Thickness)
	l.pdf.Line(l.cfg.Margins.Left, y, l.cfg.Margins.Left+width, y)
	l.pdf.Ln(r.Thickness)
}

func fontStyle(bold, italic bool) string {
	switch {
	case bold && italic:
		return "BI"
	case bold:
		return "B"
	case italic:
		return "I"
	default:
		return ""
	}
}
