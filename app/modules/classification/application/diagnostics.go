package classificationservice

import (
	"cmp"
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

const maxSuggestions = 3

// diagnose counts how every roster player resolved and lists the players that
// did not, with the closest score sheet names. It never changes results.
func (s *ClassificationService) diagnose(
	roster classificationdomain.Roster,
	table *classificationdomain.ScoreTable,
) (map[classificationdomain.MatchStrategy]int, []UnmatchedPlayer) {
	counts := make(map[classificationdomain.MatchStrategy]int, 3)

	keys := table.Keys()
	targets := make([]string, len(keys))
	for i, k := range keys {
		targets[i] = string(k)
	}

	var unmatched []UnmatchedPlayer
	for _, team := range roster {
		for _, raw := range team.Players {
			res := s.engine.Match(raw, table)
			counts[res.Strategy]++
			if res.Found {
				continue
			}

			key := s.engine.Normalize(raw)
			unmatched = append(unmatched, UnmatchedPlayer{
				Team:        team.Name,
				Player:      raw,
				Key:         key,
				Suggestions: suggest(key, table, targets),
			})
		}
	}
	return counts, unmatched
}

// suggest returns up to maxSuggestions display names for key. Names that
// contain the key's letters in order come first, then names within a small
// edit distance.
func suggest(key classificationdomain.NormalizedKey, table *classificationdomain.ScoreTable, targets []string) []string {
	if key == "" || len(targets) == 0 {
		return nil
	}

	picked := make(map[int]struct{}, maxSuggestions)
	var out []string
	add := func(idx int) {
		if entry, ok := table.Lookup(classificationdomain.NormalizedKey(targets[idx])); ok {
			out = append(out, entry.DisplayName)
			picked[idx] = struct{}{}
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(string(key), targets)
	sort.Sort(ranks)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			return out
		}
		add(r.OriginalIndex)
	}

	type candidate struct {
		idx  int
		dist int
	}
	limit := max(2, utf8.RuneCountInString(string(key))/3)
	var near []candidate
	for i, t := range targets {
		if _, ok := picked[i]; ok {
			continue
		}
		if d := fuzzy.LevenshteinDistance(string(key), t); d <= limit {
			near = append(near, candidate{idx: i, dist: d})
		}
	}
	slices.SortStableFunc(near, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})
	for _, c := range near {
		if len(out) == maxSuggestions {
			break
		}
		add(c.idx)
	}
	return out
}
