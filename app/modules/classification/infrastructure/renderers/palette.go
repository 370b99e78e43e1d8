package renderers

import (
	"strconv"
	"strings"
)

const (
	colorInk    = "#1c2329"
	colorMuted  = "#5b6a75"
	colorAccent = "#b23a48"
	colorGrid   = "#c9d2d9"
	colorTotal  = "#f4f0e6"
	colorScored = "#c6efce"
	colorWhite  = "#ffffff"
	colorChart  = "#f7f1e3"
)

var teamColors = []string{
	"#f8e1b8",
	"#d6ecf4",
	"#f4d6e0",
	"#e1f1d2",
	"#f1e1c4",
	"#dfe2f6",
	"#f6e0d2",
	"#d2f0e9",
}

// teamColor rotates through teamColors by team index.
func teamColor(idx int) string {
	return teamColors[idx%len(teamColors)]
}

type medal struct {
	Class      string
	Border     string
	Background string
}

var medals = []medal{
	{Class: "gold", Border: "#c8a23d", Background: "#fff6d5"},
	{Class: "silver", Border: "#8a97a6", Background: "#d9dee5"},
	{Class: "bronze", Border: "#b26a4c", Background: "#f4e6db"},
}

// medalFor returns the podium styling for a 1-based position.
func medalFor(position int) (medal, bool) {
	if position < 1 || position > len(medals) {
		return medal{}, false
	}
	return medals[position-1], true
}

// rgb parses a "#rrggbb" colour. Malformed input yields black.
func rgb(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
