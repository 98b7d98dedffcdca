package matcher

import (
	"github.com/dlclark/regexp2"
	"github.com/harrison/grepr/internal/models"
)

// pcreMatcher wraps a regexp2 program.
// regexp2 only reports an error from MatchString on timeout, and no timeout is
// configured, so a failed evaluation is treated as no match.
type pcreMatcher struct {
	re *regexp2.Regexp
}

func newPCREMatcher(pattern string, caseInsensitive bool) (*pcreMatcher, error) {
	opts := regexp2.None
	if caseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Engine: models.EnginePCRE, Err: err}
	}
	return &pcreMatcher{re: re}, nil
}

func (m *pcreMatcher) Match(line string) bool {
	ok, err := m.re.MatchString(line)
	if err != nil {
		return false
	}
	return ok
}
