package matcher

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// fixedMatcher matches a literal substring.
// When folding, the pattern is folded once and each candidate is folded with
// a pooled Caser, since a Caser must not be shared between goroutines.
type fixedMatcher struct {
	needle string
	fold   bool
	casers *sync.Pool
}

func newFixedMatcher(pattern string, caseInsensitive bool) *fixedMatcher {
	if !caseInsensitive {
		return &fixedMatcher{needle: pattern}
	}

	pool := &sync.Pool{
		New: func() any {
			c := cases.Fold()
			return &c
		},
	}
	caser := pool.Get().(*cases.Caser)
	needle := caser.String(pattern)
	pool.Put(caser)

	return &fixedMatcher{
		needle: needle,
		fold:   true,
		casers: pool,
	}
}

func (m *fixedMatcher) Match(line string) bool {
	if !m.fold {
		return strings.Contains(line, m.needle)
	}

	caser := m.casers.Get().(*cases.Caser)
	folded := caser.String(line)
	m.casers.Put(caser)

	return strings.Contains(folded, m.needle)
}
