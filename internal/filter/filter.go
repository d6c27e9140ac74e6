// Package filter selects files for processing using glob patterns.
// Positional file arguments bypass filtering; directories are walked and
// every regular file is matched against the include/exclude sets. Empty
// includes means "match all". Excludes always win.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Filter matches slash-separated file paths against compiled include and
// exclude globs.
type Filter struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// New compiles include/exclude patterns into a reusable filter. Patterns
// use glob syntax where '*' crosses directory separators.
func New(includes, excludes []string) (*Filter, error) {
	inc, err := compile(includes)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := compile(excludes)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc}, nil
}

// Match reports whether path passes the filter. hasIncludes indicates
// include filtering was requested, even if the compiled list ended up
// empty.
func (f *Filter) Match(path string, hasIncludes bool) bool {
	included := !hasIncludes || matchAny(f.includes, path)

	return included && !matchAny(f.excludes, path)
}

// compile normalizes and compiles a pattern list. Leading "./" is stripped
// so patterns match cleaned paths.
func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimPrefix(p, "./")

		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}

// Resolve takes positional args (files or directories) and the pattern
// sets. Files are added directly; directories are walked and filtered.
// Returns the matched files and the total number of candidates scanned.
func Resolve(args, includes, excludes []string, hasIncludes bool) (files []string, scanned int, err error) {
	f, err := New(includes, excludes)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, scanned, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++
			add(filepath.ToSlash(arg))

			continue
		}

		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			scanned++

			clean := filepath.ToSlash(filepath.Clean(path))
			if f.Match(clean, hasIncludes) {
				add(clean)
			}

			return nil
		})
		if walkErr != nil {
			return nil, scanned, fmt.Errorf("walking %q: %w", arg, walkErr)
		}
	}

	return files, scanned, nil
}
