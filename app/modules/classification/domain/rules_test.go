package classificationdomain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rules)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Rules) {}},
		{name: "empty points table", mutate: func(r *Rules) { r.PointsTable = nil }},
		{name: "later current stage", mutate: func(r *Rules) { r.CurrentStage = 8 }},
		{name: "zero stages", mutate: func(r *Rules) { r.StageCount = 0 }, wantErr: true},
		{name: "current stage past the end", mutate: func(r *Rules) { r.CurrentStage = 9 }, wantErr: true},
		{name: "current stage zero", mutate: func(r *Rules) { r.CurrentStage = 0 }, wantErr: true},
		{name: "no counted players", mutate: func(r *Rules) { r.CountedPlayers = 0 }, wantErr: true},
		{name: "points not descending", mutate: func(r *Rules) { r.PointsTable = []int{100, 100, 90} }, wantErr: true},
		{name: "empty token", mutate: func(r *Rules) { r.CountryTokens = []string{"spain", ""} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			err := rules.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRules)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewEngine_RejectsInvalidRules(t *testing.T) {
	rules := DefaultRules()
	rules.StageCount = -1
	engine, err := NewEngine(rules)
	require.ErrorIs(t, err, ErrInvalidRules)
	require.Nil(t, engine)
}

func TestEngine_RulesAreCopied(t *testing.T) {
	rules := DefaultRules()
	engine, err := NewEngine(rules)
	require.NoError(t, err)

	rules.PointsTable[0] = 1
	got := engine.Rules()
	require.Equal(t, 100, got.PointsTable[0])

	got.PointsTable[0] = 2
	require.Equal(t, 100, engine.Rules().PointsTable[0])
}

func TestDefaultPointsTable(t *testing.T) {
	table := DefaultPointsTable()
	require.Len(t, table, 20)
	require.Equal(t, 100, table[0])
	require.Equal(t, 49, table[19])
	for i := 1; i < len(table); i++ {
		require.Less(t, table[i], table[i-1])
	}
}
