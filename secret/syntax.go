package secret

import (
	"fmt"
	"regexp"
	"strings"
)

// Default reference delimiters.
const (
	DefaultPrefix = "$(taemno os://"
	DefaultSuffix = ")"
)

// Syntax defines how a secret reference is embedded in a value: a literal
// prefix, a service/account capture, and a literal suffix. The zero value
// means the default syntax.
type Syntax struct {
	Prefix string
	Suffix string
}

// DefaultSyntax returns the default reference syntax.
func DefaultSyntax() Syntax {
	return Syntax{Prefix: DefaultPrefix, Suffix: DefaultSuffix}
}

// pattern compiles the syntax into a regexp. Prefix and suffix are quoted so
// regexp metacharacters in them match literally; the capture is lazy,
// stopping at the first suffix after each prefix.
func (s Syntax) pattern() *regexp.Regexp {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	suffix := s.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + `(.*?)` + regexp.QuoteMeta(suffix))
}

// Matcher finds secret references embedded in text. A Matcher is immutable
// and safe for concurrent use; every FindAll call scans its input from the
// start.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles s into a Matcher.
func NewMatcher(s Syntax) *Matcher {
	return &Matcher{re: s.pattern()}
}

// Match is one reference occurrence found in a value.
type Match struct {
	Text    string // full match, including prefix and suffix
	Service string
	Account string
}

// FindAll returns every non-overlapping reference in text, left to right.
// A malformed capture (empty, no separator, or an empty service or account)
// fails the whole scan with ErrMalformedReference.
func (m *Matcher) FindAll(text string) ([]Match, error) {
	groups := m.re.FindAllStringSubmatch(text, -1)
	if len(groups) == 0 {
		return nil, nil
	}
	matches := make([]Match, 0, len(groups))
	for _, g := range groups {
		service, account, err := splitRef(g[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, g[0])
		}
		matches = append(matches, Match{Text: g[0], Service: service, Account: account})
	}
	return matches, nil
}

// splitRef splits a captured reference on its first "/" separator. Both
// halves must be non-empty.
func splitRef(capture string) (service, account string, err error) {
	service, account, ok := strings.Cut(capture, "/")
	if !ok || service == "" || account == "" {
		return "", "", ErrMalformedReference
	}
	return service, account, nil
}
