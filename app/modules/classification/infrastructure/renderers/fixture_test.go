package renderers

import (
	"bytes"
	"fmt"
	"image"
	imagecolor "image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, imagecolor.RGBA{R: 200, G: 162, B: 61, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// buildReport runs the engine over teams synthetic teams of four players and
// one shared unmatched player each.
func buildReport(t *testing.T, teams int) Report {
	t.Helper()

	engine, err := classificationdomain.NewEngine(classificationdomain.DefaultRules())
	require.NoError(t, err)

	var rows []classificationdomain.ScoreRow
	roster := make(classificationdomain.Roster, 0, teams)
	for i := 0; i < teams; i++ {
		team := classificationdomain.Team{Name: fmt.Sprintf("Equipo %02d", i+1)}
		for j := 0; j < 5; j++ {
			name := fmt.Sprintf("Jugador %02d-%d", i+1, j)
			rows = append(rows, classificationdomain.ScoreRow{
				Name:  classificationdomain.TextCell(name),
				Score: classificationdomain.NumberCell(float64(60 + i + j)),
			})
			team.Players = append(team.Players, name)
		}
		team.Players = append(team.Players, "Sin Resultado")
		roster = append(roster, team)
	}

	table, _ := engine.LoadScores(rows)
	ranking := engine.Score(roster, table)

	return Report{
		Headline:    "Campeonato de España por equipos 2026",
		Subtitle:    "Etapa 1 · 2026",
		Title:       "Clasificacion de Equipos",
		Footer:      "Footgolf · Clasificacion por equipos",
		StageLabels: classificationdomain.StageLabels("", engine.Rules().StageCount),
		Ranking:     ranking,
		Points:      engine.DerivePoints(ranking),
		Details:     engine.BuildDetails(roster, table),
		Summary:     classificationdomain.BuildSummary(ranking),
	}
}
