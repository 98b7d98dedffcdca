package source

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/harrison/grepr/internal/fileutil"
	"github.com/harrison/grepr/internal/models"
)

// Logger is the subset of logging the enumerator needs
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Entry is one resolved item of a target list: either a source to scan or a
// per-target failure. Source is always set so failures can be labeled.
type Entry struct {
	Source models.InputSource
	Err    error
}

// EnumerateOptions controls how directory targets are expanded
type EnumerateOptions struct {
	// IncludeBinary scans binary files found during recursion
	IncludeBinary bool
	// ExcludeDirs are directory names pruned during recursion
	ExcludeDirs []string
	// RespectGitignore honors .gitignore files during recursion
	RespectGitignore bool
}

// Enumerator resolves target arguments into an ordered sequence of sources
type Enumerator struct {
	opts   EnumerateOptions
	logger Logger
}

// NewEnumerator creates an Enumerator. A nil logger discards messages.
func NewEnumerator(opts EnumerateOptions, logger Logger) *Enumerator {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Enumerator{opts: opts, logger: logger}
}

// Enumerate lazily resolves targets in order. Each target contributes, in
// place, either itself, its recursive listing, or one failure entry:
//
//   - no targets, or "-": standard input
//   - a file (or anything else that is not a directory): that file
//   - a directory without recursive: *IsADirectoryError
//   - a directory with recursive: every regular file below it, depth-first,
//     lexicographic at each level
//   - a missing or unreadable path: *SourceUnavailableError
//
// Failures never stop enumeration of the remaining targets.
func (e *Enumerator) Enumerate(ctx context.Context, targets []string, recursive bool) iter.Seq[Entry] {
	if len(targets) == 0 {
		targets = []string{models.StdinTarget}
	}

	return func(yield func(Entry) bool) {
		for _, target := range targets {
			if ctx.Err() != nil {
				return
			}
			if !e.resolve(ctx, target, recursive, yield) {
				return
			}
		}
	}
}

// resolve emits the entries for a single target
func (e *Enumerator) resolve(ctx context.Context, target string, recursive bool, yield func(Entry) bool) bool {
	if target == models.StdinTarget {
		return yield(Entry{Source: models.StdinSource()})
	}

	src := models.FileSource(target, false)

	info, err := os.Stat(target)
	if err != nil {
		return yield(Entry{Source: src, Err: &SourceUnavailableError{Name: target, Err: err}})
	}

	if !info.IsDir() {
		return yield(Entry{Source: src})
	}

	if !recursive {
		return yield(Entry{Source: src, Err: &IsADirectoryError{Name: target}})
	}

	e.logger.LogDebug(fmt.Sprintf("descending into %s", target))

	walkOpts := fileutil.WalkOptions{
		ExcludeDirs: e.opts.ExcludeDirs,
		Gitignore:   e.opts.RespectGitignore,
	}
	for entry := range fileutil.Walk(ctx, target, walkOpts) {
		if !e.emitWalkEntry(entry, yield) {
			return false
		}
	}
	return true
}

// emitWalkEntry converts a walk entry into zero or one enumeration entries
func (e *Enumerator) emitWalkEntry(entry fileutil.WalkEntry, yield func(Entry) bool) bool {
	src := models.FileSource(entry.Path, true)

	switch entry.Kind {
	case fileutil.EntryError:
		return yield(Entry{Source: src, Err: &SourceUnavailableError{Name: entry.Path, Err: entry.Err}})

	case fileutil.EntrySkippedLoop:
		e.logger.LogWarn(fmt.Sprintf("%s: recursive directory loop, skipping", entry.Path))
		return true

	case fileutil.EntrySkippedIgnored:
		e.logger.LogDebug(fmt.Sprintf("%s: ignored by .gitignore", entry.Path))
		return true
	}

	if !e.opts.IncludeBinary {
		binary, err := fileutil.IsBinaryFile(entry.Path)
		if err != nil {
			return yield(Entry{Source: src, Err: &SourceUnavailableError{Name: entry.Path, Err: err}})
		}
		if binary {
			e.logger.LogDebug(fmt.Sprintf("%s: binary file, skipping", entry.Path))
			return true
		}
	}

	return yield(Entry{Source: src})
}

// nopLogger discards all messages
type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}
