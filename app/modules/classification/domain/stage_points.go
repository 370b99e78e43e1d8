package classificationdomain

// StagePointsRow is a team's points per stage and their sum.
type StagePointsRow struct {
	Team   string
	Stages []int
	Total  int
}

// PointsForPosition returns the stage points for a 0-based rank position.
// Positions past the end of the table earn nothing.
func PointsForPosition(table []int, position int) int {
	if position < 0 || position >= len(table) {
		return 0
	}
	return table[position]
}

// DerivePoints turns the ranking into stage points. Only the current stage is
// filled in; stages not yet played stay at 0.
func (e *Engine) DerivePoints(ranking Ranking) []StagePointsRow {
	rows := make([]StagePointsRow, 0, len(ranking))
	current := e.rules.currentIndex()

	for i, res := range ranking {
		stages := make([]int, e.rules.StageCount)
		stages[current] = PointsForPosition(e.rules.PointsTable, i)

		total := 0
		for _, p := range stages {
			total += p
		}
		rows = append(rows, StagePointsRow{
			Team:   res.Team,
			Stages: stages,
			Total:  total,
		})
	}

	return rows
}
