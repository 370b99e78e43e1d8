package classificationdomain

import (
	"fmt"
	"strconv"
	"strings"
)

// SummaryRow is one line of the team classification sheet written back to the workbook.
type SummaryRow struct {
	Team         string
	TotalStrokes int
	Players      string
	Scores       string
}

// SummaryHeader returns the header row of the classification sheet.
func SummaryHeader() []string {
	return []string{"Equipo", "TotalGolpes", "JugadoresPuntuaron", "GolpesPuntuaron"}
}

// BuildSummary flattens the ranking into summary rows, keeping ranking order.
func BuildSummary(ranking Ranking) []SummaryRow {
	rows := make([]SummaryRow, 0, len(ranking))
	for _, res := range ranking {
		names := make([]string, 0, len(res.Counted))
		scores := make([]string, 0, len(res.Counted))
		for _, p := range res.Counted {
			names = append(names, p.DisplayName)
			scores = append(scores, strconv.Itoa(p.Strokes))
		}
		rows = append(rows, SummaryRow{
			Team:         res.Team,
			TotalStrokes: res.TotalStrokes,
			Players:      strings.Join(names, ", "),
			Scores:       strings.Join(scores, ", "),
		})
	}
	return rows
}

// StageLabels returns one display label per stage from a printf format such as "Etapa %d".
func StageLabels(format string, stageCount int) []string {
	if format == "" {
		format = "Etapa %d"
	}
	labels := make([]string, stageCount)
	for i := range labels {
		labels[i] = fmt.Sprintf(format, i+1)
	}
	return labels
}
