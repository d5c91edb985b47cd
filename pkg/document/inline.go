package document

import (
	"regexp"
	"strings"
)

// Run is one styled span of a line's visible text.
type Run struct {
	Text   string `json:"text" yaml:"text"`
	Bold   bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Code   bool   `json:"code,omitempty" yaml:"code,omitempty"`
	Link   string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Plain reports whether the run carries no styling.
func (r Run) Plain() bool {
	return !r.Bold && !r.Italic && !r.Code && r.Link == ""
}

// InlineRuns is the ordered, gap-free span list for one line.
type InlineRuns []Run

// Text concatenates the visible text of all runs.
func (r InlineRuns) Text() string {
	var b strings.Builder
	for _, run := range r {
		b.WriteString(run.Text)
	}
	return b.String()
}

// spanRule claims matches of pattern in unclaimed text. Group 1 is the
// visible text; group 2, when present, is the link target.
type spanRule struct {
	pattern *regexp.Regexp
	apply   func(run *Run, groups []string)
}

// Rules run in this order; a range claimed by one rule is never rescanned.
//
//nolint:gochecknoglobals // Read-only rule table.
var spanRules = []spanRule{
	{
		pattern: regexp.MustCompile("`([^`]+)`"),
		apply:   func(run *Run, _ []string) { run.Code = true },
	},
	{
		pattern: regexp.MustCompile(`\*\*([^*]+)\*\*`),
		apply:   func(run *Run, _ []string) { run.Bold = true },
	},
	{
		pattern: regexp.MustCompile(`\*([^*]+)\*`),
		apply:   func(run *Run, _ []string) { run.Italic = true },
	},
	{
		pattern: regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`),
		apply:   func(run *Run, groups []string) { run.Link = groups[2] },
	},
}

// segment is a piece of the line during substitution. Claimed segments are
// already styled and immune to later rules.
type segment struct {
	run     Run
	claimed bool
}

// Substitute splits text into inline runs, applying code, bold, italic and
// link rules in that order. Unmatched delimiters stay literal.
func Substitute(text string) InlineRuns {
	if text == "" {
		return nil
	}

	segments := []segment{{run: Run{Text: text}}}
	for _, rule := range spanRules {
		segments = applyRule(segments, rule)
	}

	return mergeRuns(segments)
}

func applyRule(in []segment, rule spanRule) []segment {
	out := make([]segment, 0, len(in))
	for _, seg := range in {
		if seg.claimed {
			out = append(out, seg)
			continue
		}

		src := seg.run.Text
		matches := rule.pattern.FindAllStringSubmatchIndex(src, -1)
		if len(matches) == 0 {
			out = append(out, seg)
			continue
		}

		pos := 0
		for _, m := range matches {
			if m[0] > pos {
				out = append(out, segment{run: Run{Text: src[pos:m[0]]}})
			}

			groups := make([]string, len(m)/2)
			for g := range groups {
				if m[2*g] >= 0 {
					groups[g] = src[m[2*g]:m[2*g+1]]
				}
			}

			run := Run{Text: groups[1]}
			rule.apply(&run, groups)
			out = append(out, segment{run: run, claimed: true})
			pos = m[1]
		}
		if pos < len(src) {
			out = append(out, segment{run: Run{Text: src[pos:]}})
		}
	}
	return out
}

// mergeRuns joins adjacent plain segments so literal text is a single run.
func mergeRuns(segments []segment) InlineRuns {
	runs := make(InlineRuns, 0, len(segments))
	for _, seg := range segments {
		if seg.run.Text == "" {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].Plain() && seg.run.Plain() {
			runs[n-1].Text += seg.run.Text
			continue
		}
		runs = append(runs, seg.run)
	}
	return runs
}
