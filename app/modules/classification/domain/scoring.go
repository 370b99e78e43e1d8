package classificationdomain

import (
	"cmp"
	"slices"
)

// TeamResult is a team's score for the current stage.
type TeamResult struct {
	Team         string
	TotalStrokes int
	// Counted holds the players whose strokes make the total, best first.
	Counted []ScoreEntry
}

// Ranking is the team classification, best (lowest total) first.
type Ranking []TeamResult

// Score computes one TeamResult per roster team and ranks them ascending by
// total strokes. Teams with equal totals keep roster order. A team without any
// matched player totals 0 and therefore ranks at the top.
func (e *Engine) Score(roster Roster, table *ScoreTable) Ranking {
	ranking := make(Ranking, 0, len(roster))

	for _, team := range roster {
		counted := e.countedPlayers(e.matchTeam(team, table))

		result := TeamResult{
			Team:    team.Name,
			Counted: make([]ScoreEntry, 0, len(counted)),
		}
		for _, p := range counted {
			result.Counted = append(result.Counted, p.entry)
			result.TotalStrokes += p.entry.Strokes
		}
		ranking = append(ranking, result)
	}

	slices.SortStableFunc(ranking, func(a, b TeamResult) int {
		return cmp.Compare(a.TotalStrokes, b.TotalStrokes)
	})

	return ranking
}

// Position returns the 1-based rank of team, or 0 if it is not ranked.
func (r Ranking) Position(team string) int {
	for i, res := range r {
		if res.Team == team {
			return i + 1
		}
	}
	return 0
}
