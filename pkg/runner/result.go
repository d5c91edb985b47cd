package runner

import "github.com/samber/lo"

// FileOutcome is the result of exporting one source file.
type FileOutcome struct {
	// Path is the source file.
	Path string

	// Output is the artifact written. Empty when Error is set.
	Output string

	// Error is set if the artifact could not be produced.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesExported   int
	FilesFailed     int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered source, ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any source failed to export.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// Failed returns the outcomes that carry an error.
func (r *Result) Failed() []FileOutcome {
	if r == nil {
		return nil
	}
	return lo.Filter(r.Files, func(f FileOutcome, _ int) bool {
		return f.Error != nil
	})
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}
	r.Stats.FilesExported++
}
