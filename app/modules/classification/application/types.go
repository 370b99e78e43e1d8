package classificationservice

import (
	"github.com/google/uuid"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

// ClassifyRequest describes one classification run.
type ClassifyRequest struct {
	Workbook   string
	TeamSheet  string
	ScoreSheet string

	// UpdateWorkbook rewrites SummarySheet in Workbook with the ranking.
	UpdateWorkbook bool
	SummarySheet   string

	// Outputs maps a renderer format ("html", "pdf") to its destination.
	// Formats without a path are skipped with a warning.
	Outputs map[string]string

	Headline         string
	Subtitle         string
	Title            string
	Footer           string
	StageLabelFormat string
	LogoPath         string
	Chart            bool
}

// UnmatchedPlayer is a roster entry that did not resolve to any score row.
type UnmatchedPlayer struct {
	Team        string
	Player      string
	Key         classificationdomain.NormalizedKey
	Suggestions []string
}

// Artifact is a report file written by a run.
type Artifact struct {
	Format string
	Path   string
}

// ClassifyResult is everything a run computed and produced.
type ClassifyResult struct {
	RunID uuid.UUID

	Ranking classificationdomain.Ranking
	Points  []classificationdomain.StagePointsRow
	Details []classificationdomain.TeamDetail
	Summary []classificationdomain.SummaryRow

	ScoreStats classificationdomain.ScoreLoadStats
	Matches    map[classificationdomain.MatchStrategy]int
	Unmatched  []UnmatchedPlayer

	WorkbookUpdated bool
	Artifacts       []Artifact
	Warnings        []string
}
