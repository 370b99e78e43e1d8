package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// Player is one roster entry and, if they played, their score sheet row.
type Player struct {
	RosterName string
	SheetName  string
	Strokes    int
	Played     bool
}

// Team is a generated team with its players in roster order.
type Team struct {
	Name    string
	Players []Player
}

var countrySuffixes = []string{"", "", " ESP", " (Spain)", " España", " - Portugal"}

// GenerateTeams creates teams of between minPlayers and maxPlayers players.
// Every player name carries a unique zero-padded number so no two players can
// resolve to each other through substring matching. Roughly one in eight
// players did not play.
func (g *TestDataGenerator) GenerateTeams(count, minPlayers, maxPlayers int) []Team {
	teams := make([]Team, count)
	serial := 0

	for i := range teams {
		team := Team{Name: fmt.Sprintf("%s %02d", g.faker.City(), i+1)}
		size := g.faker.Number(minPlayers, maxPlayers)

		for j := 0; j < size; j++ {
			serial++
			base := fmt.Sprintf("%s %s %03d", g.faker.FirstName(), g.faker.LastName(), serial)

			roster := base
			if g.faker.Number(0, 3) == 0 {
				roster = accent(base)
			}

			team.Players = append(team.Players, Player{
				RosterName: roster,
				SheetName:  base + countrySuffixes[g.faker.Number(0, len(countrySuffixes)-1)],
				Strokes:    g.faker.Number(55, 110),
				Played:     g.faker.Number(0, 7) != 0,
			})
		}
		teams[i] = team
	}

	return teams
}

// accent swaps plain vowels for accented ones, as roster sheets typed by hand
// often do.
func accent(name string) string {
	return strings.NewReplacer("a", "á", "e", "é", "o", "ó").Replace(name)
}
