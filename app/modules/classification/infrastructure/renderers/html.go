package renderers

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

var htmlReport = template.Must(template.New("report").Parse(reportTemplate))

type htmlCard struct {
	Position int
	Medal    string
	Team     string
	Total    int
	Players  []classificationdomain.ScoreEntry
}

type htmlCell struct {
	Score  int
	Scored bool
}

type htmlDetailRow struct {
	Player string
	Cells  []htmlCell
}

type htmlDetail struct {
	Team  string
	Style template.CSS
	Rows  []htmlDetailRow
}

type htmlView struct {
	PageTitle   string
	Headline    string
	Subtitle    string
	Title       string
	Footer      string
	Logo        template.URL
	Chart       template.URL
	StageLabels []string
	Cards       []htmlCard
	Points      []classificationdomain.StagePointsRow
	Details     []htmlDetail
}

// HTMLRenderer writes the classification as a single self-contained HTML page.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Format() string { return "html" }

// Render writes report to path, replacing any existing file.
func (r *HTMLRenderer) Render(ctx context.Context, report Report, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := r.write(w, report); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return f.Close()
}

func (r *HTMLRenderer) write(w io.Writer, report Report) error {
	if err := htmlReport.Execute(w, newHTMLView(report)); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}

func newHTMLView(report Report) htmlView {
	view := htmlView{
		PageTitle:   report.Title + " - " + report.Subtitle,
		Headline:    report.Headline,
		Subtitle:    report.Subtitle,
		Title:       report.Title,
		Footer:      report.Footer,
		Logo:        pngDataURI(report.Logo),
		Chart:       pngDataURI(report.Chart),
		StageLabels: report.StageLabels,
		Points:      report.Points,
		Cards:       make([]htmlCard, 0, len(report.Ranking)),
		Details:     make([]htmlDetail, 0, len(report.Details)),
	}

	for i, res := range report.Ranking {
		card := htmlCard{
			Position: i + 1,
			Team:     res.Team,
			Total:    res.TotalStrokes,
			Players:  res.Counted,
		}
		if m, ok := medalFor(i + 1); ok {
			card.Medal = m.Class
		}
		view.Cards = append(view.Cards, card)
	}

	for i, detail := range report.Details {
		d := htmlDetail{
			Team:  detail.Team,
			Style: template.CSS("background:" + teamColor(i)),
			Rows:  make([]htmlDetailRow, 0, len(detail.Rows)),
		}
		for _, row := range detail.Rows {
			cells := make([]htmlCell, len(row.Scores))
			for s, score := range row.Scores {
				cells[s] = htmlCell{Score: score, Scored: s < len(row.Contributed) && row.Contributed[s]}
			}
			d.Rows = append(d.Rows, htmlDetailRow{Player: row.Player, Cells: cells})
		}
		view.Details = append(view.Details, d)
	}

	return view
}

// pngDataURI inlines a PNG so the page has no external image files.
func pngDataURI(png []byte) template.URL {
	if len(png) == 0 {
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
