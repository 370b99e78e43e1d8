package classificationdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	ranking := Ranking{
		{
			Team:         "Team A",
			TotalStrokes: 140,
			Counted: []ScoreEntry{
				{DisplayName: "Ana Gomez", Strokes: 68},
				{DisplayName: "Juan Perez", Strokes: 72},
			},
		},
		{Team: "Team B"},
	}

	want := []SummaryRow{
		{Team: "Team A", TotalStrokes: 140, Players: "Ana Gomez, Juan Perez", Scores: "68, 72"},
		{Team: "Team B"},
	}
	if diff := cmp.Diff(want, BuildSummary(ranking)); diff != "" {
		t.Fatalf("BuildSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryHeader(t *testing.T) {
	require.Equal(t, []string{"Equipo", "TotalGolpes", "JugadoresPuntuaron", "GolpesPuntuaron"}, SummaryHeader())
}

func TestStageLabels(t *testing.T) {
	require.Equal(t, []string{"Etapa 1", "Etapa 2", "Etapa 3"}, StageLabels("", 3))
	require.Equal(t, []string{"Stage 1", "Stage 2"}, StageLabels("Stage %d", 2))
	require.Empty(t, StageLabels("", 0))
}
