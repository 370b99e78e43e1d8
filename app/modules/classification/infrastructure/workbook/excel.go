package workbook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

// Score sheet layout: one header row, player name in column B, strokes in column C.
const (
	scoreNameCol  = 1
	scoreValueCol = 2
)

// ExcelRepository implements Repository on .xlsx files.
type ExcelRepository struct{}

func NewExcelRepository() *ExcelRepository {
	return &ExcelRepository{}
}

func (r *ExcelRepository) ReadSheets(ctx context.Context, path, scoreSheet, teamSheet string) (*Sheets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	scoreGrid, err := readGrid(f, scoreSheet)
	if err != nil {
		return nil, err
	}
	teamGrid, err := readGrid(f, teamSheet)
	if err != nil {
		return nil, err
	}

	sheets := &Sheets{}
	for i := 1; i < len(scoreGrid); i++ {
		row := scoreGrid[i]
		sheets.Scores = append(sheets.Scores, classificationdomain.ScoreRow{
			Name:  cellAt(row, scoreNameCol),
			Score: cellAt(row, scoreValueCol),
		})
	}
	if len(teamGrid) > 0 {
		sheets.TeamHeader = teamGrid[0]
		sheets.TeamRows = teamGrid[1:]
	}

	return sheets, nil
}

func (r *ExcelRepository) WriteSummary(ctx context.Context, path, sheetName string, rows []classificationdomain.SummaryRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", sheetName, err)
	}
	if idx != -1 {
		if err := f.DeleteSheet(sheetName); err != nil {
			return fmt.Errorf("failed to delete sheet %q: %w", sheetName, err)
		}
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
	}

	header := classificationdomain.SummaryHeader()
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &values); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Team, row.TotalStrokes, row.Players, row.Scores}
		if err := f.SetSheetRow(sheetName, axis, &values); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+2, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// readGrid returns every row of sheet as raw cells. Values are read without
// number formatting so that strokes keep their stored value.
func readGrid(f *excelize.File, sheet string) ([][]classificationdomain.Cell, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	grid := make([][]classificationdomain.Cell, len(rows))
	for r, row := range rows {
		cells := make([]classificationdomain.Cell, len(row))
		for c, value := range row {
			if value == "" {
				continue
			}
			numeric, err := isNumeric(f, sheet, c+1, r+1)
			if err != nil {
				return nil, err
			}
			if numeric {
				cells[c] = classificationdomain.Cell{Value: value, Numeric: true}
			} else {
				cells[c] = classificationdomain.TextCell(value)
			}
		}
		grid[r] = cells
	}
	return grid, nil
}

// isNumeric reports whether the cell at the 1-based coordinates stores a
// number. Cells without an explicit type are numbers in SpreadsheetML.
func isNumeric(f *excelize.File, sheet string, col, row int) (bool, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return false, fmt.Errorf("failed to read cell type %s!%s: %w", sheet, axis, err)
	}
	return typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset, nil
}

func cellAt(row []classificationdomain.Cell, idx int) classificationdomain.Cell {
	if idx >= len(row) {
		return classificationdomain.Cell{}
	}
	return row[idx]
}
