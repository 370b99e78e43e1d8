package renderers

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// A4 portrait, millimetres.
const (
	pdfPageWidth    = 210.0
	pdfMargin       = 18.0
	pdfTopMargin    = 16.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin

	pdfRowHeight    = 7.0
	pdfDetailHeight = 5.5
	pdfLongTeamName = 32
)

// PDFRenderer writes the classification as a paginated A4 document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Format() string { return "pdf" }

// Render writes report to path, replacing any existing file.
func (r *PDFRenderer) Render(ctx context.Context, report Report, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.write(&buf, report); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func (r *PDFRenderer) write(w io.Writer, report Report) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfTopMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfTopMargin)
	doc.SetTitle(report.Headline, true)
	doc.SetCreator("team-classification", true)

	p := &pdfWriter{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	p.footer(report.Footer)
	doc.AddPage()

	p.image("logo", report.Logo, 60)
	p.titles(report)
	p.rankingTable(report)
	p.image("chart", report.Chart, pdfContentWidth)
	p.stagesTable(report)
	p.detailTables(report)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf report: %w", err)
	}
	return nil
}

type pdfWriter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func (p *pdfWriter) fill(hex string) {
	p.doc.SetFillColor(rgb(hex))
}

func (p *pdfWriter) text(hex string) {
	p.doc.SetTextColor(rgb(hex))
}

func (p *pdfWriter) draw(hex string) {
	p.doc.SetDrawColor(rgb(hex))
}

// fit shortens s until it fits in width w at the current font.
func (p *pdfWriter) fit(s string, w float64) string {
	s = p.tr(s)
	limit := w - 2
	if p.doc.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && p.doc.GetStringWidth(s+"...") > limit {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func (p *pdfWriter) footer(text string) {
	p.doc.SetFooterFunc(func() {
		p.doc.SetY(-12)
		p.doc.SetFont("Helvetica", "", 8)
		p.text(colorMuted)
		p.doc.CellFormat(0, 5, p.tr(text+"  ·  "+strconv.Itoa(p.doc.PageNo())), "", 0, "C", false, 0, "")
	})
}

// image centres a PNG of the given width. Undecodable images are skipped.
func (p *pdfWriter) image(name string, data []byte, width float64) {
	if len(data) == 0 {
		return
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	x := (pdfPageWidth - width) / 2
	p.doc.ImageOptions(name, x, p.doc.GetY(), width, 0, true, opts, 0, "")
	p.doc.Ln(4)
}

func (p *pdfWriter) titles(report Report) {
	p.text(colorInk)
	p.doc.SetFont("Helvetica", "B", 18)
	p.doc.CellFormat(0, 10, p.tr(report.Headline), "", 1, "C", false, 0, "")
	p.doc.SetFont("Helvetica", "B", 13)
	p.doc.CellFormat(0, 8, p.tr(report.Title+" - "+report.Subtitle), "", 1, "C", false, 0, "")
	p.doc.Ln(6)
}

func (p *pdfWriter) header(cells []string, widths []float64, size float64) {
	p.doc.SetFont("Helvetica", "B", size)
	p.fill(colorInk)
	p.text(colorWhite)
	p.draw(colorGrid)
	p.doc.SetLineWidth(0.25)
	for i, c := range cells {
		align := "C"
		if i == 0 && len(widths) > 0 && widths[0] > 20 {
			align = "L"
		}
		p.doc.CellFormat(widths[i], pdfRowHeight, p.fit(c, widths[i]), "1", 0, align, true, 0, "")
	}
	p.doc.Ln(-1)
}

func (p *pdfWriter) rankingTable(report Report) {
	teamW := 70.0
	for _, row := range report.Summary {
		if utf8.RuneCountInString(row.Team) > pdfLongTeamName {
			teamW = 90
			break
		}
	}
	widths := []float64{12, teamW, 30, pdfContentWidth - (12 + teamW + 30)}

	p.header([]string{"#", "Equipo", "Total", "Aportes (golpes)"}, widths, 10)

	for i, row := range report.Summary {
		y := p.doc.GetY()
		if y+pdfRowHeight > 297-pdfTopMargin {
			p.doc.AddPage()
			y = p.doc.GetY()
		}

		background := colorWhite
		m, podium := medalFor(i + 1)
		if podium {
			background = m.Background
		}

		p.doc.SetFont("Helvetica", "", 9)
		p.text(colorInk)
		p.draw(colorGrid)
		p.doc.SetLineWidth(0.25)
		p.fill(background)
		p.doc.CellFormat(widths[0], pdfRowHeight, strconv.Itoa(i+1), "1", 0, "C", true, 0, "")
		p.doc.CellFormat(widths[1], pdfRowHeight, p.fit(row.Team, widths[1]), "1", 0, "L", true, 0, "")

		p.doc.SetFont("Helvetica", "B", 9)
		if !podium {
			p.fill(colorTotal)
		}
		p.doc.CellFormat(widths[2], pdfRowHeight, strconv.Itoa(row.TotalStrokes)+" golpes", "1", 0, "C", true, 0, "")

		p.doc.SetFont("Helvetica", "", 9)
		p.fill(background)
		p.doc.CellFormat(widths[3], pdfRowHeight, p.fit(row.Scores, widths[3]), "1", 1, "L", true, 0, "")

		if podium {
			p.draw(m.Border)
			p.doc.SetLineWidth(0.5)
			p.doc.Rect(pdfMargin, y, pdfContentWidth, pdfRowHeight, "D")
		}
	}
	p.doc.SetLineWidth(0.25)
	p.doc.Ln(8)
}

// stageWidths returns the first column width followed by one width per stage.
func stageWidths(first, trailing float64, stages int) []float64 {
	stageW := 12.0
	if stages > 0 {
		stageW = min(stageW, (pdfContentWidth-first-trailing)/float64(stages))
	}
	widths := []float64{first}
	for range stages {
		widths = append(widths, stageW)
	}
	if trailing > 0 {
		widths = append(widths, trailing)
	}
	return widths
}

func (p *pdfWriter) sectionTitle(title string) {
	p.doc.SetFont("Helvetica", "B", 12)
	p.text(colorInk)
	p.doc.CellFormat(0, 8, p.tr(title), "", 1, "L", false, 0, "")
}

func (p *pdfWriter) stagesTable(report Report) {
	p.sectionTitle("Clasificacion por etapas")

	widths := stageWidths(55, 16, len(report.StageLabels))
	cells := append([]string{"Equipo"}, report.StageLabels...)
	p.header(append(cells, "Total"), widths, 8)

	p.doc.SetFont("Helvetica", "", 7)
	p.text(colorInk)
	for _, row := range report.Points {
		p.doc.CellFormat(widths[0], pdfDetailHeight, p.fit(row.Team, widths[0]), "1", 0, "L", false, 0, "")
		for i, pts := range row.Stages {
			if i+1 >= len(widths)-1 {
				break
			}
			p.doc.CellFormat(widths[i+1], pdfDetailHeight, strconv.Itoa(pts), "1", 0, "C", false, 0, "")
		}
		p.doc.CellFormat(widths[len(widths)-1], pdfDetailHeight, strconv.Itoa(row.Total), "1", 1, "C", false, 0, "")
	}
	p.doc.Ln(6)
}

func (p *pdfWriter) detailTables(report Report) {
	p.sectionTitle("Detalle por equipos")

	widths := stageWidths(45, 0, len(report.StageLabels))
	for idx, detail := range report.Details {
		p.doc.SetFont("Helvetica", "B", 9)
		p.text(colorInk)
		p.fill(teamColor(idx))
		p.doc.CellFormat(pdfContentWidth, pdfRowHeight, p.fit(detail.Team, pdfContentWidth), "", 1, "L", true, 0, "")

		p.header(append([]string{"Jugador"}, report.StageLabels...), widths, 8)

		p.doc.SetFont("Helvetica", "", 7)
		p.text(colorInk)
		for _, row := range detail.Rows {
			p.doc.CellFormat(widths[0], pdfDetailHeight, p.fit(row.Player, widths[0]), "1", 0, "L", false, 0, "")
			for s, score := range row.Scores {
				if s+1 >= len(widths) {
					break
				}
				scored := s < len(row.Contributed) && row.Contributed[s]
				if scored {
					p.fill(colorScored)
				}
				p.doc.CellFormat(widths[s+1], pdfDetailHeight, strconv.Itoa(score), "1", 0, "C", scored, 0, "")
			}
			p.doc.Ln(-1)
		}
		p.doc.Ln(4)
	}
}
