package renderers

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	classificationdomain "github.com/Black-And-White-Club/team-classification/app/modules/classification/domain"
)

const (
	chartWidth      = 900
	chartHeight     = 420
	chartMaxBar     = 60
	chartBarSpacing = 12
	chartLabelRunes = 14
)

// TotalsChart produces a PNG bar chart of team totals in ranking order.
// Podium teams get their medal colour. An empty ranking has no chart and
// returns nil.
func TotalsChart(ranking classificationdomain.Ranking) ([]byte, error) {
	if len(ranking) == 0 {
		return nil, nil
	}

	maxTotal := 0
	bars := make([]chart.Value, 0, len(ranking))
	for i, res := range ranking {
		fill := colorAccent
		if m, ok := medalFor(i + 1); ok {
			fill = m.Border
		}
		bars = append(bars, chart.Value{
			Label: shorten(res.Team, chartLabelRunes),
			Value: float64(res.TotalStrokes),
			Style: chart.Style{
				FillColor:   color(fill),
				StrokeColor: color(fill),
				StrokeWidth: 1,
			},
		})
		maxTotal = max(maxTotal, res.TotalStrokes)
	}

	// A zero-height range is rejected by the renderer.
	top := float64(maxTotal) * 1.1
	if top <= 0 {
		top = 1
	}

	graph := chart.BarChart{
		Title:      "Total de golpes por equipo",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth(len(bars)),
		BarSpacing: chartBarSpacing,
		Background: chart.Style{
			FillColor: color(colorChart),
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: color(colorChart),
		},
		TitleStyle: chart.Style{
			FontColor: color(colorInk),
		},
		XAxis: chart.Style{
			FontColor: color(colorInk),
			FontSize:  8,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: color(colorMuted),
			},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// barWidth fits n bars into the canvas, capped at chartMaxBar pixels.
func barWidth(n int) int {
	usable := chartWidth - 120
	w := usable/n - chartBarSpacing
	return max(4, min(chartMaxBar, w))
}

func color(hex string) drawing.Color {
	r, g, b := rgb(hex)
	return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// shorten truncates s to n runes, marking the cut with "…".
func shorten(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
