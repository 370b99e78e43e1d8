package classificationdomain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tableOf(t *testing.T, pairs ...any) *ScoreTable {
	t.Helper()
	require.Zero(t, len(pairs)%3, "pairs are key, display name, strokes")
	table := NewScoreTable()
	for i := 0; i < len(pairs); i += 3 {
		table.add(NormalizedKey(pairs[i].(string)), ScoreEntry{
			DisplayName: pairs[i+1].(string),
			Strokes:     pairs[i+2].(int),
		})
	}
	return table
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(NewNormalizer(DefaultCountryTokens()))

	table := tableOf(t,
		"ana", "Ana", 60,
		"ana gomez", "Ana Gomez", 68,
		"juan perez", "Juan Perez", 72,
		"luis diaz a", "Luis Diaz A", 80,
		"luis diaz b", "Luis Diaz B", 81,
	)

	tests := []struct {
		name         string
		raw          string
		wantFound    bool
		wantEntry    ScoreEntry
		wantStrategy MatchStrategy
	}{
		{
			name:         "exact match wins over shorter substring",
			raw:          "Ana Gomez",
			wantFound:    true,
			wantEntry:    ScoreEntry{DisplayName: "Ana Gomez", Strokes: 68},
			wantStrategy: MatchExact,
		},
		{
			name:         "accents resolved by normalization",
			raw:          "Juan Pérez",
			wantFound:    true,
			wantEntry:    ScoreEntry{DisplayName: "Juan Perez", Strokes: 72},
			wantStrategy: MatchExact,
		},
		{
			name:         "roster name extends a sheet name",
			raw:          "Juan Perez Garcia",
			wantFound:    true,
			wantEntry:    ScoreEntry{DisplayName: "Juan Perez", Strokes: 72},
			wantStrategy: MatchSubstring,
		},
		{
			name:         "shortest candidate is preferred",
			raw:          "Ana Gomez Ruiz",
			wantFound:    true,
			wantEntry:    ScoreEntry{DisplayName: "Ana", Strokes: 60},
			wantStrategy: MatchSubstring,
		},
		{
			name:         "equal length candidates resolve to first loaded",
			raw:          "Luis Diaz",
			wantFound:    true,
			wantEntry:    ScoreEntry{DisplayName: "Luis Diaz A", Strokes: 80},
			wantStrategy: MatchSubstring,
		},
		{
			name:         "no candidate",
			raw:          "Marta Ruiz",
			wantStrategy: MatchNone,
		},
		{
			name:         "empty key never matches",
			raw:          "Spain",
			wantStrategy: MatchNone,
		},
		{
			name:         "blank name never matches",
			raw:          "   ",
			wantStrategy: MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.raw, table)
			require.Equal(t, tt.wantFound, got.Found)
			require.Equal(t, tt.wantStrategy, got.Strategy)
			if tt.wantFound {
				require.Equal(t, tt.wantEntry, got.Entry)
				require.NotEmpty(t, got.Key)
			}
		})
	}
}

func TestMatcher_EmptyTable(t *testing.T) {
	m := NewMatcher(NewNormalizer(nil))
	require.False(t, m.Match("Juan", NewScoreTable()).Found)
	require.False(t, m.Match("Juan", nil).Found)
}

func TestMatcher_ShortKeyFalsePositive(t *testing.T) {
	m := NewMatcher(NewNormalizer(nil))
	table := tableOf(t,
		"juan perez", "Juan Perez", 72,
		"ana", "Ana", 70,
	)

	got := m.Match("Mariana Lopez", table)
	require.True(t, got.Found)
	require.Equal(t, "Ana", got.Entry.DisplayName)
	require.Equal(t, NormalizedKey("ana"), got.Key)
}

func TestMatcher_AccentedRosterAgainstPlainSheet(t *testing.T) {
	engine := newTestEngine(t)
	table, _ := engine.LoadScores([]ScoreRow{
		{Name: TextCell("Perez"), Score: NumberCell(70)},
		{Name: TextCell("Perez Lopez"), Score: NumberCell(75)},
	})

	got := engine.Match("Pérez", table)
	require.True(t, got.Found)
	require.Equal(t, MatchExact, got.Strategy)
	require.Equal(t, 70, got.Entry.Strokes)
}
