package matcher

import (
	"fmt"

	"github.com/harrison/grepr/internal/models"
)

// Matcher reports whether a line satisfies a compiled pattern.
type Matcher interface {
	Match(line string) bool
}

// Options configures pattern compilation
type Options struct {
	// CaseInsensitive folds both pattern and candidate before comparison
	CaseInsensitive bool
	// Engine selects the pattern language (models.Engine* constants)
	Engine string
}

// New compiles pattern with the selected engine.
// An empty engine selects models.EngineRegexp. Compilation failures are
// returned as *InvalidPatternError.
func New(pattern string, opts Options) (Matcher, error) {
	engine := opts.Engine
	if engine == "" {
		engine = models.EngineRegexp
	}

	switch engine {
	case models.EngineRegexp:
		return newRegexpMatcher(pattern, opts.CaseInsensitive)
	case models.EnginePOSIX:
		return newPOSIXMatcher(pattern, opts.CaseInsensitive)
	case models.EngineFixed:
		return newFixedMatcher(pattern, opts.CaseInsensitive), nil
	case models.EnginePCRE:
		return newPCREMatcher(pattern, opts.CaseInsensitive)
	default:
		return nil, &InvalidPatternError{
			Pattern: pattern,
			Engine:  engine,
			Err:     fmt.Errorf("unknown engine %q", engine),
		}
	}
}
