package workbook

import "errors"

// ErrSheetNotFound indicates a sheet named in the configuration is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")
