package classificationdomain

import (
	"strings"
	"unicode/utf8"
)

// MatchStrategy records how a roster name was resolved.
type MatchStrategy string

const (
	MatchNone      MatchStrategy = "none"
	MatchExact     MatchStrategy = "exact"
	MatchSubstring MatchStrategy = "substring"
)

// MatchResult is the outcome of resolving one raw roster name.
// Entry and Key are only meaningful when Found is true.
type MatchResult struct {
	Entry    ScoreEntry
	Key      NormalizedKey
	Strategy MatchStrategy
	Found    bool
}

// Matcher resolves raw roster names against a ScoreTable.
type Matcher struct {
	normalizer *Normalizer
}

// NewMatcher returns a Matcher using n to build lookup keys.
func NewMatcher(n *Normalizer) *Matcher {
	return &Matcher{normalizer: n}
}

// Match resolves raw against table. An exact key match always wins. Otherwise
// every table key that contains, or is contained in, the raw key is a
// candidate and the shortest one is chosen; equally short candidates resolve
// to the one loaded first.
//
// Short keys can produce false positives through containment. This is a known
// limitation and is kept so rankings stay reproducible.
func (m *Matcher) Match(raw string, table *ScoreTable) MatchResult {
	key := m.normalizer.Normalize(raw)
	if key == "" || table.Len() == 0 {
		return MatchResult{Strategy: MatchNone}
	}

	if entry, ok := table.Lookup(key); ok {
		return MatchResult{Entry: entry, Key: key, Strategy: MatchExact, Found: true}
	}

	var (
		best    NormalizedKey
		bestLen int
		found   bool
	)
	for _, candidate := range table.keys {
		if !strings.Contains(string(key), string(candidate)) && !strings.Contains(string(candidate), string(key)) {
			continue
		}
		n := utf8.RuneCountInString(string(candidate))
		if !found || n < bestLen {
			best, bestLen, found = candidate, n, true
		}
	}
	if !found {
		return MatchResult{Strategy: MatchNone}
	}

	entry, _ := table.Lookup(best)
	return MatchResult{Entry: entry, Key: best, Strategy: MatchSubstring, Found: true}
}
