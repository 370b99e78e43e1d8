package classificationdomain

// PlayerDetailRow is one roster player's score per stage and whether it
// counted towards the team total.
type PlayerDetailRow struct {
	Player      string
	Scores      []int
	Contributed []bool
}

// TeamDetail lists a team's players in roster order.
type TeamDetail struct {
	Team string
	Rows []PlayerDetailRow
}

// BuildDetails produces the per-player breakdown for every roster team, in
// roster order. Players without a result show the DidNotFinish score. A player
// is marked as contributing when its normalized name is one of the team's
// counted players, so repeated roster names are all marked.
func (e *Engine) BuildDetails(roster Roster, table *ScoreTable) []TeamDetail {
	details := make([]TeamDetail, 0, len(roster))
	current := e.rules.currentIndex()

	for _, team := range roster {
		counted := make(map[NormalizedKey]struct{}, e.rules.CountedPlayers)
		for _, p := range e.countedPlayers(e.matchTeam(team, table)) {
			counted[e.normalizer.Normalize(p.raw)] = struct{}{}
		}

		rows := make([]PlayerDetailRow, 0, len(team.Players))
		for _, raw := range team.Players {
			row := PlayerDetailRow{
				Player:      raw,
				Scores:      make([]int, e.rules.StageCount),
				Contributed: make([]bool, e.rules.StageCount),
			}
			for i := range row.Scores {
				row.Scores[i] = e.rules.DidNotFinish
			}

			if res := e.matcher.Match(raw, table); res.Found {
				row.Scores[current] = res.Entry.Strokes
				_, row.Contributed[current] = counted[e.normalizer.Normalize(raw)]
			}
			rows = append(rows, row)
		}

		details = append(details, TeamDetail{Team: team.Name, Rows: rows})
	}

	return details
}
