package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// GitignoreFile is the per-directory ignore file name
const GitignoreFile = ".gitignore"

// ignoreLayer holds the rules of one .gitignore and the directory it applies to
type ignoreLayer struct {
	base  string
	rules *ignore.GitIgnore
}

// IgnoreStack is the set of .gitignore layers in effect for a directory,
// outermost first. A nil stack ignores nothing.
type IgnoreStack []ignoreLayer

// Push returns the stack extended with dir's .gitignore, if it has one.
// The receiver is never modified, so sibling directories do not see each
// other's rules.
func (s IgnoreStack) Push(dir string) (IgnoreStack, error) {
	path := filepath.Join(dir, GitignoreFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to access ignore file: %w", err)
	}

	rules, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to parse ignore file: %w", err)
	}

	next := make(IgnoreStack, len(s), len(s)+1)
	copy(next, s)
	return append(next, ignoreLayer{base: dir, rules: rules}), nil
}

// Match reports whether any layer ignores path.
// Directory paths get a trailing slash so "name/" patterns apply to them.
func (s IgnoreStack) Match(path string, isDir bool) bool {
	for _, layer := range s {
		rel, err := filepath.Rel(layer.base, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if layer.rules.MatchesPath(rel) {
			return true
		}
	}
	return false
}
