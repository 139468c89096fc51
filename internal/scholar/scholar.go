// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar builds best-effort author profiles and citation-impact
// estimates from fetched article records. Author matching is string-based
// and does not disambiguate distinct people sharing a name; the Matcher
// interface isolates that choice so a stricter strategy can be substituted
// without touching callers.
package scholar

import (
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Matcher decides whether an article author matches the queried name.
type Matcher interface {
	Match(queried string, author types.Author) bool
}

// SubstringMatcher matches case-insensitively on name containment in either
// direction ("Smith J" matches "Smith JA"). The accepted imprecision of
// this strategy is documented on the package.
type SubstringMatcher struct{}

// Match reports whether author's name and the queried name contain one
// another, ignoring case.
func (SubstringMatcher) Match(queried string, author types.Author) bool {
	q := normalizeName(queried)
	a := normalizeName(author.Name)
	if q == "" || a == "" {
		return false
	}
	return strings.Contains(a, q) || strings.Contains(q, a)
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
