package classificationdomain

// Team is one roster column: the team name and its raw player names.
type Team struct {
	Name    string
	Players []string
}

// Roster lists teams in sheet column order.
type Roster []Team

// Team returns the team with the given name.
func (r Roster) Team(name string) (Team, bool) {
	for _, team := range r {
		if team.Name == name {
			return team, true
		}
	}
	return Team{}, false
}

// PlayerCount returns the number of raw player names across all teams.
func (r Roster) PlayerCount() int {
	n := 0
	for _, team := range r {
		n += len(team.Players)
	}
	return n
}

// LoadRoster reads team names from the header row and player names from the
// cells below each team. Blank cells are skipped and teams without players are
// left out. When a team name repeats, the later column's players replace the
// earlier ones but the team keeps its first position.
func (e *Engine) LoadRoster(header []Cell, rows [][]Cell) Roster {
	roster := make(Roster, 0, len(header))
	position := make(map[string]int, len(header))

	for col, cell := range header {
		if cell.IsBlank() {
			continue
		}
		name := cell.Text()

		var players []string
		for _, row := range rows {
			if col >= len(row) || row[col].IsBlank() {
				continue
			}
			players = append(players, row[col].Text())
		}
		if len(players) == 0 {
			continue
		}

		if idx, ok := position[name]; ok {
			roster[idx].Players = players
			continue
		}
		position[name] = len(roster)
		roster = append(roster, Team{Name: name, Players: players})
	}

	return roster
}
