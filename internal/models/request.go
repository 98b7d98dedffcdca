package models

import (
	"errors"
	"fmt"
)

// StdinTarget is the target argument that stands for standard input
const StdinTarget = "-"

// Pattern engine names accepted by SearchRequest.Engine
const (
	EngineRegexp = "regexp" // RE2 syntax (default)
	EnginePOSIX  = "posix"  // POSIX extended regular expressions, leftmost-longest
	EngineFixed  = "fixed"  // Literal substring
	EnginePCRE   = "pcre"   // Backtracking engine with lookaround and backreferences
)

// SearchRequest is the validated input to a search run.
// It is treated as immutable once handed to the engine.
type SearchRequest struct {
	Pattern          string   // Search pattern (non-empty)
	Targets          []string // Paths or "-" for stdin; empty means stdin only
	Recursive        bool     // Descend into directory targets
	CountOnly        bool     // Report one count per source instead of lines
	Invert           bool     // Report lines that do not match
	CaseInsensitive  bool     // Fold case before comparing
	Engine           string   // Pattern engine (defaults to EngineRegexp)
	IncludeBinary    bool     // Scan binary files found during recursion
	ExcludeDirs      []string // Directory names pruned during recursion
	RespectGitignore bool     // Honor .gitignore files during recursion
}

// EffectiveTargets returns the targets to scan, substituting stdin when none were given
func (r SearchRequest) EffectiveTargets() []string {
	if len(r.Targets) == 0 {
		return []string{StdinTarget}
	}
	return r.Targets
}

// EffectiveEngine returns the engine name, defaulting to EngineRegexp
func (r SearchRequest) EffectiveEngine() string {
	if r.Engine == "" {
		return EngineRegexp
	}
	return r.Engine
}

// Validate checks the request for values no run could accept
func (r SearchRequest) Validate() error {
	if r.Pattern == "" {
		return errors.New("pattern is required")
	}
	switch r.EffectiveEngine() {
	case EngineRegexp, EnginePOSIX, EngineFixed, EnginePCRE:
	default:
		return fmt.Errorf("unknown pattern engine %q", r.Engine)
	}
	for _, target := range r.Targets {
		if target == "" {
			return errors.New("empty file argument")
		}
	}
	return nil
}
