package classificationdomain

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned when a Rules value cannot drive a classification run.
var ErrInvalidRules = errors.New("invalid classification rules")

// Rules holds the scoring configuration for one classification run.
type Rules struct {
	// CountryTokens are removed from player names before matching.
	CountryTokens []string
	// PointsTable assigns stage points by 0-based rank position.
	PointsTable []int
	// DidNotFinish is the detail score shown for players without a result.
	DidNotFinish int
	// StageCount is the number of stage slots, played or not.
	StageCount int
	// CurrentStage is the 1-based stage the score sheet belongs to.
	CurrentStage int
	// CountedPlayers is how many of a team's best scores make its total.
	CountedPlayers int
}

// DefaultCountryTokens lists the country and region names stripped from player names.
func DefaultCountryTokens() []string {
	return []string{
		"spain",
		"espana",
		"espa",
		"esp",
		"espagne",
		"sp",
		"switzerland",
		"swiss",
		"suiza",
		"portugal",
		"france",
		"italy",
		"italia",
		"germany",
		"deutschland",
		"argentina",
		"uruguay",
	}
}

// DefaultPointsTable is the stage points awarded to the first twenty teams.
func DefaultPointsTable() []int {
	return []int{100, 96, 92, 88, 84, 80, 77, 74, 71, 69, 67, 65, 63, 61, 59, 57, 55, 53, 51, 49}
}

// DefaultRules returns the rules used by the 2026 team championship.
func DefaultRules() Rules {
	return Rules{
		CountryTokens:  DefaultCountryTokens(),
		PointsTable:    DefaultPointsTable(),
		DidNotFinish:   180,
		StageCount:     8,
		CurrentStage:   1,
		CountedPlayers: 4,
	}
}

// Validate reports whether the rules are usable.
func (r Rules) Validate() error {
	if r.StageCount <= 0 {
		return fmt.Errorf("%w: stage count must be positive, got %d", ErrInvalidRules, r.StageCount)
	}
	if r.CurrentStage < 1 || r.CurrentStage > r.StageCount {
		return fmt.Errorf("%w: current stage %d outside 1..%d", ErrInvalidRules, r.CurrentStage, r.StageCount)
	}
	if r.CountedPlayers <= 0 {
		return fmt.Errorf("%w: counted players must be positive, got %d", ErrInvalidRules, r.CountedPlayers)
	}
	for i := 1; i < len(r.PointsTable); i++ {
		if r.PointsTable[i] >= r.PointsTable[i-1] {
			return fmt.Errorf("%w: points table must be strictly descending at position %d", ErrInvalidRules, i)
		}
	}
	for i, token := range r.CountryTokens {
		if token == "" {
			return fmt.Errorf("%w: country token %d is empty", ErrInvalidRules, i)
		}
	}
	return nil
}

// currentIndex is the 0-based slot of the current stage.
func (r Rules) currentIndex() int {
	return r.CurrentStage - 1
}
