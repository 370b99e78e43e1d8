package classificationdomain

import (
	"math"
	"strconv"
	"strings"
)

// Cell is one spreadsheet value. The zero Cell is an absent value.
type Cell struct {
	Value   string
	Numeric bool
}

// TextCell returns a non-numeric cell holding v.
func TextCell(v string) Cell {
	return Cell{Value: v}
}

// NumberCell returns a numeric cell holding v.
func NumberCell(v float64) Cell {
	return Cell{Value: strconv.FormatFloat(v, 'f', -1, 64), Numeric: true}
}

// IsBlank reports whether the cell is absent or only whitespace.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.Value) == ""
}

// Text returns the trimmed cell value.
func (c Cell) Text() string {
	return strings.TrimSpace(c.Value)
}

// Int coerces the cell to an integer. Text cells must hold a decimal integer;
// numeric cells are truncated toward zero.
func (c Cell) Int() (int, bool) {
	v := c.Text()
	if v == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	if !c.Numeric {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ScoreRow is one row of the individual score sheet.
type ScoreRow struct {
	Name  Cell
	Score Cell
}

// ScoreEntry is a player's result as written on the score sheet.
type ScoreEntry struct {
	DisplayName string
	Strokes     int
}

// ScoreTable maps normalized keys to score entries and remembers the order in
// which keys were first seen. It is read-only once loaded.
type ScoreTable struct {
	keys    []NormalizedKey
	entries map[NormalizedKey]ScoreEntry
}

// NewScoreTable returns an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{entries: make(map[NormalizedKey]ScoreEntry)}
}

// add inserts entry under key unless the key is already present.
func (t *ScoreTable) add(key NormalizedKey, entry ScoreEntry) bool {
	if _, exists := t.entries[key]; exists {
		return false
	}
	t.keys = append(t.keys, key)
	t.entries[key] = entry
	return true
}

// Lookup returns the entry stored under key.
func (t *ScoreTable) Lookup(key NormalizedKey) (ScoreEntry, bool) {
	if t == nil {
		return ScoreEntry{}, false
	}
	entry, ok := t.entries[key]
	return entry, ok
}

// Keys returns the keys in insertion order.
func (t *ScoreTable) Keys() []NormalizedKey {
	if t == nil {
		return nil
	}
	out := make([]NormalizedKey, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns the entries in insertion order.
func (t *ScoreTable) Entries() []ScoreEntry {
	if t == nil {
		return nil
	}
	out := make([]ScoreEntry, 0, len(t.keys))
	for _, key := range t.keys {
		out = append(out, t.entries[key])
	}
	return out
}

// Len returns the number of distinct keys.
func (t *ScoreTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// ScoreLoadStats counts what happened to each score sheet row.
type ScoreLoadStats struct {
	Rows       int
	Loaded     int
	Blank      int
	BadScore   int
	EmptyKey   int
	Duplicates int
}

// LoadScores builds the score table. Malformed rows are skipped and only counted.
// When two rows normalize to the same key the first one wins.
func (e *Engine) LoadScores(rows []ScoreRow) (*ScoreTable, ScoreLoadStats) {
	table := NewScoreTable()
	stats := ScoreLoadStats{Rows: len(rows)}

	for _, row := range rows {
		if row.Name.IsBlank() || row.Score.IsBlank() {
			stats.Blank++
			continue
		}
		strokes, ok := row.Score.Int()
		if !ok {
			stats.BadScore++
			continue
		}
		name := row.Name.Text()
		key := e.normalizer.Normalize(name)
		if key == "" {
			stats.EmptyKey++
			continue
		}
		if !table.add(key, ScoreEntry{DisplayName: name, Strokes: strokes}) {
			stats.Duplicates++
			continue
		}
		stats.Loaded++
	}

	return table, stats
}
