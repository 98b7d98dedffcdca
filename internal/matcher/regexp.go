package matcher

import (
	"regexp"
	"regexp/syntax"

	"github.com/harrison/grepr/internal/models"
)

// regexpMatcher wraps a compiled RE2 program
type regexpMatcher struct {
	re *regexp.Regexp
}

func newRegexpMatcher(pattern string, caseInsensitive bool) (*regexpMatcher, error) {
	expr := pattern
	if caseInsensitive {
		expr = "(?i)" + pattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Engine: models.EngineRegexp, Err: err}
	}
	return &regexpMatcher{re: re}, nil
}

// newPOSIXMatcher parses pattern with POSIX ERE rules only, then compiles the
// parsed tree with leftmost-longest semantics. Parsing first is what rejects
// Perl extensions such as \d or (?i) in this mode.
func newPOSIXMatcher(pattern string, caseInsensitive bool) (*regexpMatcher, error) {
	flags := syntax.POSIX
	if caseInsensitive {
		flags |= syntax.FoldCase
	}

	tree, err := syntax.Parse(pattern, flags)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Engine: models.EnginePOSIX, Err: err}
	}

	re, err := regexp.Compile(tree.String())
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Engine: models.EnginePOSIX, Err: err}
	}
	re.Longest()

	return &regexpMatcher{re: re}, nil
}

func (m *regexpMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}
