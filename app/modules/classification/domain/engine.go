package classificationdomain

import (
	"cmp"
	"slices"
)

// Engine runs the classification rules: loading, matching, scoring and
// deriving stage tables. Engines hold no mutable state.
type Engine struct {
	rules      Rules
	normalizer *Normalizer
	matcher    *Matcher
}

// NewEngine validates rules and builds an Engine for them.
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	rules.CountryTokens = slices.Clone(rules.CountryTokens)
	rules.PointsTable = slices.Clone(rules.PointsTable)

	normalizer := NewNormalizer(rules.CountryTokens)
	return &Engine{
		rules:      rules,
		normalizer: normalizer,
		matcher:    NewMatcher(normalizer),
	}, nil
}

// Rules returns a copy of the engine's rules.
func (e *Engine) Rules() Rules {
	r := e.rules
	r.CountryTokens = slices.Clone(e.rules.CountryTokens)
	r.PointsTable = slices.Clone(e.rules.PointsTable)
	return r
}

// Normalize returns the matching key for raw.
func (e *Engine) Normalize(raw string) NormalizedKey {
	return e.normalizer.Normalize(raw)
}

// Match resolves one raw roster name against table.
func (e *Engine) Match(raw string, table *ScoreTable) MatchResult {
	return e.matcher.Match(raw, table)
}

type matchedPlayer struct {
	raw   string
	entry ScoreEntry
}

// matchTeam resolves every player of team in roster order and keeps the hits.
func (e *Engine) matchTeam(team Team, table *ScoreTable) []matchedPlayer {
	matched := make([]matchedPlayer, 0, len(team.Players))
	for _, raw := range team.Players {
		res := e.matcher.Match(raw, table)
		if !res.Found {
			continue
		}
		matched = append(matched, matchedPlayer{raw: raw, entry: res.Entry})
	}
	return matched
}

// countedPlayers returns the lowest CountedPlayers results. Equal strokes keep
// roster order.
func (e *Engine) countedPlayers(matched []matchedPlayer) []matchedPlayer {
	sorted := slices.Clone(matched)
	slices.SortStableFunc(sorted, func(a, b matchedPlayer) int {
		return cmp.Compare(a.entry.Strokes, b.entry.Strokes)
	})
	if len(sorted) > e.rules.CountedPlayers {
		sorted = sorted[:e.rules.CountedPlayers]
	}
	return sorted
}
