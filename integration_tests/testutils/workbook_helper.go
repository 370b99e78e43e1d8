package testutils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the generated workbooks.
const (
	TeamSheet  = "Equipos"
	ScoreSheet = "Clasificacion etapa 1 2026"
)

// WriteChampionshipWorkbook saves teams as a stage workbook in a temp dir and
// returns its path. The score sheet lists players in shuffled-looking order
// with a header row, as exported by the scoring app.
func WriteChampionshipWorkbook(t *testing.T, teams []Team) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(TeamSheet)
	require.NoError(t, err)
	_, err = f.NewSheet(ScoreSheet)
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for col, team := range teams {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(TeamSheet, cell, team.Name))

		for row, p := range team.Players {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(TeamSheet, cell, p.RosterName))
		}
	}

	require.NoError(t, f.SetSheetRow(ScoreSheet, "A1", &[]interface{}{"Pos", "Jugador", "Golpes"}))
	row := 2
	for i := len(teams) - 1; i >= 0; i-- {
		for _, p := range teams[i].Players {
			if !p.Played {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(ScoreSheet, cell, &[]interface{}{row - 1, p.SheetName, p.Strokes}))
			row++
		}
	}

	path := filepath.Join(t.TempDir(), "etapa1_2026_equipos.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
