// Package files discovers the candidate audio files for a session.
package files

import (
	"os"
	"sort"
	"strings"

	"mixtape/internal/errors"

	"github.com/gobwas/glob"
)

// List scans dir and returns the filenames whose lowercased name
// matches one of the given glob patterns, sorted byte-wise ascending.
// Patterns are matched case-insensitively; an empty result is not an
// error. The returned order is deterministic and locale-independent.
func List(dir string, patterns []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("input folder not found", dir, errors.FileNotFound, nil)
		}
		return nil, errors.NewFileError("cannot access input folder", dir, errors.FileNotFound, err)
	}
	if !info.IsDir() {
		return nil, errors.NewFileError("not a directory", dir, errors.NotADirectory, nil)
	}

	matchers, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot read input folder", dir, errors.FileNotFound, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(matchers, strings.ToLower(entry.Name())) {
			names = append(names, entry.Name())
		}
	}

	// Byte-wise lexicographic order for a stable, deterministic list
	sort.Strings(names)
	return names, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, errors.NewConfigError("invalid file pattern "+p, errors.InvalidConfig, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

func matchesAny(matchers []glob.Glob, name string) bool {
	for _, g := range matchers {
		if g.Match(name) {
			return true
		}
	}
	return false
}
