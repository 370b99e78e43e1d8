package renderers

import (
	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

// Report is everything a renderer needs to draw one classification.
type Report struct {
	Headline string
	Subtitle string
	Title    string
	Footer   string

	StageLabels []string

	Ranking classificationdomain.Ranking
	Points  []classificationdomain.StagePointsRow
	Details []classificationdomain.TeamDetail
	Summary []classificationdomain.SummaryRow

	// Logo and Chart are PNG images; either may be nil.
	Logo  []byte
	Chart []byte
}
