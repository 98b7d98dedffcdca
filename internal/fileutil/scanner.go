package fileutil

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// EntryKind classifies a WalkEntry
type EntryKind int

const (
	// EntryFile is a regular file (possibly reached through a symlink).
	EntryFile EntryKind = iota
	// EntryError is a path that could not be read or resolved.
	EntryError
	// EntrySkippedLoop is a directory link back to an ancestor of itself.
	EntrySkippedLoop
	// EntrySkippedIgnored is a file or directory excluded by a .gitignore rule.
	EntrySkippedIgnored
)

// WalkOptions configures directory traversal
type WalkOptions struct {
	// ExcludeDirs is a list of directory names to prune (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// Gitignore enables .gitignore files found during the walk
	Gitignore bool
}

// WalkEntry is one item produced by Walk
type WalkEntry struct {
	Kind EntryKind
	// Path is the root joined with the entry's relative path
	Path string
	// Err is set for EntryError
	Err error
}

// walker carries the per-walk configuration shared by every level of recursion
type walker struct {
	ctx     context.Context
	exclude map[string]bool
	opts    WalkOptions
	yield   func(WalkEntry) bool
}

// Walk lazily walks root depth-first, yielding regular files in lexicographic
// order at each directory level.
func Walk(ctx context.Context, root string, opts WalkOptions) iter.Seq[WalkEntry] {
	return func(yield func(WalkEntry) bool) {
		canonical, err := filepath.EvalSymlinks(root)
		if err != nil {
			yield(WalkEntry{Kind: EntryError, Path: root, Err: fmt.Errorf("failed to resolve directory: %w", err)})
			return
		}

		excludeMap := make(map[string]bool)
		for _, dir := range opts.ExcludeDirs {
			excludeMap[dir] = true
		}

		w := &walker{
			ctx:     ctx,
			exclude: excludeMap,
			opts:    opts,
			yield:   yield,
		}

		ancestors := map[string]struct{}{canonical: {}}
		w.walkDir(root, canonical, ancestors, nil)
	}
}

// walkDir visits one directory. It returns false once the consumer has
// stopped pulling or the context is done.
func (w *walker) walkDir(dir, canonical string, ancestors map[string]struct{}, ignores IgnoreStack) bool {
	if w.ctx.Err() != nil {
		return false
	}

	// os.ReadDir sorts by filename; on error it still returns what it read
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !w.yield(WalkEntry{Kind: EntryError, Path: dir, Err: err}) {
			return false
		}
	}

	if w.opts.Gitignore {
		ignores, err = ignores.Push(dir)
		if err != nil {
			if !w.yield(WalkEntry{Kind: EntryError, Path: filepath.Join(dir, GitignoreFile), Err: err}) {
				return false
			}
		}
	}

	for _, entry := range entries {
		if w.ctx.Err() != nil {
			return false
		}

		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks so links to files and directories are treated
		// like their targets
		info, err := os.Stat(path)
		if err != nil {
			if !w.yield(WalkEntry{Kind: EntryError, Path: path, Err: err}) {
				return false
			}
			continue
		}

		if info.IsDir() {
			if w.exclude[entry.Name()] {
				continue
			}
			if ignores.Match(path, true) {
				if !w.yield(WalkEntry{Kind: EntrySkippedIgnored, Path: path}) {
					return false
				}
				continue
			}

			childCanonical := filepath.Join(canonical, entry.Name())
			if entry.Type()&fs.ModeSymlink != 0 {
				childCanonical, err = filepath.EvalSymlinks(path)
				if err != nil {
					if !w.yield(WalkEntry{Kind: EntryError, Path: path, Err: err}) {
						return false
					}
					continue
				}
			}

			if _, seen := ancestors[childCanonical]; seen {
				if !w.yield(WalkEntry{Kind: EntrySkippedLoop, Path: path}) {
					return false
				}
				continue
			}

			ancestors[childCanonical] = struct{}{}
			ok := w.walkDir(path, childCanonical, ancestors, ignores)
			delete(ancestors, childCanonical)
			if !ok {
				return false
			}
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		if ignores.Match(path, false) {
			if !w.yield(WalkEntry{Kind: EntrySkippedIgnored, Path: path}) {
				return false
			}
			continue
		}

		if !w.yield(WalkEntry{Kind: EntryFile, Path: path}) {
			return false
		}
	}

	return true
}
