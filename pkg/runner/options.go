// Package runner exports many source files concurrently.
package runner

import "github.com/yaklabco/markview/pkg/export"

// Options controls a batch export.
type Options struct {
	// Paths are the files or directories to export.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to match Ignore patterns. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// treated as sources. Defaults to DefaultExtensions().
	Extensions []string

	// Ignore holds glob patterns, relative to WorkingDir, of files or
	// directories to skip. "**" crosses directory boundaries.
	Ignore []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds the number of concurrent exports.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Target is the artifact format written for every source.
	Target export.Target

	// OutDir, when set, receives every artifact, mirroring each source's
	// path relative to WorkingDir. Otherwise artifacts sit next to their source.
	OutDir string
}

// DefaultExtensions returns the default set of source extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
