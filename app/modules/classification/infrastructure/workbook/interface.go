package workbook

import (
	"context"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

// Sheets holds the raw cells of the two input sheets.
type Sheets struct {
	// Scores holds one row per score sheet line below the header.
	Scores []classificationdomain.ScoreRow
	// TeamHeader is the first row of the roster sheet.
	TeamHeader []classificationdomain.Cell
	// TeamRows are the roster rows below the header.
	TeamRows [][]classificationdomain.Cell
}

// Repository reads classification inputs from a workbook and writes the
// summary sheet back into it.
//
// Error semantics:
//   - ErrSheetNotFound: a requested sheet is missing
//   - Other errors: the file could not be opened, read or saved
type Repository interface {
	// ReadSheets opens path and returns the score and roster sheets.
	ReadSheets(ctx context.Context, path, scoreSheet, teamSheet string) (*Sheets, error)

	// WriteSummary replaces sheetName in the workbook at path with the
	// summary rows and saves the file in place.
	WriteSummary(ctx context.Context, path, sheetName string, rows []classificationdomain.SummaryRow) error
}
