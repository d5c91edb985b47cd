package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// Discover finds source files matching opts. It returns a deterministically
// sorted list of absolute file paths without duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m, err := newMatcher(workDir, opts.effectiveExtensions(), opts.Ignore)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Named files skip the extension filter but not the ignore list.
			if !m.ignored(absPath, false) {
				files = append(files, absPath)
			}
			continue
		}

		found, err := walkDirectory(ctx, absPath, m, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	files = lo.Uniq(files)
	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func walkDirectory(ctx context.Context, root string, m *matcher, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && m.ignored(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, err := os.Stat(realPath)
			if err != nil {
				return nil //nolint:nilerr // unreadable symlink targets are skipped
			}
			if info.IsDir() {
				if !followSymlinks {
					return nil
				}
				// Walk the target; WalkDir does not descend into a symlink root.
				sub, err := walkDirectory(ctx, realPath, m, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if m.source(path) && !m.ignored(path, false) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matcher holds the compiled discovery filters.
type matcher struct {
	workDir    string
	extensions []string
	ignore     []glob.Glob
}

func newMatcher(workDir string, extensions, patterns []string) (*matcher, error) {
	m := &matcher{
		workDir: workDir,
		extensions: lo.Map(extensions, func(e string, _ int) string {
			return strings.ToLower(e)
		}),
	}

	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", p, err)
		}
		m.ignore = append(m.ignore, g)
	}
	return m, nil
}

func (m *matcher) source(path string) bool {
	return slices.Contains(m.extensions, strings.ToLower(filepath.Ext(path)))
}

// ignored matches path, relative to the working directory, against the
// ignore patterns. Patterns also match the bare name, so "draft*.md" works
// at any depth. Directories match "dir/**" style patterns too.
func (m *matcher) ignored(path string, dir bool) bool {
	if len(m.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	candidates := []string{rel, filepath.Base(path)}
	if dir {
		candidates = append(candidates, rel+"/")
	}

	return lo.SomeBy(m.ignore, func(g glob.Glob) bool {
		return lo.SomeBy(candidates, g.Match)
	})
}
