// Package matcher answers whether a line matches a search pattern.
//
// Every backend sits behind the Matcher interface so the enumerator and the
// search engine never see which pattern language is in use:
//
//   - regexp: RE2 syntax (default). Covers POSIX ERE for match/no-match decisions.
//   - posix:  strict POSIX ERE syntax with leftmost-longest semantics.
//   - fixed:  literal substring search.
//   - pcre:   backtracking engine (github.com/dlclark/regexp2) with lookaround
//     and backreferences.
//
// Patterns are compiled once by New. Case-insensitive matching is fixed at
// construction and uses a locale-independent fold. Matchers hold no mutable
// state visible to callers and may be shared between goroutines.
package matcher
