// Package table builds tabular views of quotes for CLI output.
package table

import (
	"strconv"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// textWidth is where quote text is cut in narrow tables.
const textWidth = 60

// Data is a rendered-agnostic table.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// Quotes lists quotes by id, category and text. Unless wide is set, long
// text is shortened with an ellipsis.
func Quotes(list []quotes.Quote, wide bool) Data {
	rows := make([][]string, 0, len(list))
	for _, q := range list {
		text := q.Text
		if !wide {
			text = Truncate(text, textWidth)
		}
		rows = append(rows, []string{strconv.FormatInt(q.ID, 10), q.Category, text})
	}
	return Data{
		Headers:         []string{"ID", "Category", "Text"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// Categories counts quotes per category, in the order of quotes.Categories.
func Categories(list []quotes.Quote) Data {
	counts := make(map[string]int)
	for _, q := range list {
		counts[q.Category]++
	}

	names := quotes.Categories(list)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		n := counts[name]
		if name == constants.AllCategories {
			n = len(list)
		}
		rows = append(rows, []string{name, strconv.Itoa(n)})
	}
	return Data{
		Headers:         []string{"Category", "Quotes"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// SyncStatus renders periodic sync health as key/value rows.
func SyncStatus(s pkgsync.Status) Data {
	rows := [][]string{
		{"Running", strconv.FormatBool(s.Running)},
		{"Interval", s.Interval},
		{"Cycles", strconv.Itoa(s.Cycles)},
		{"Skipped ticks", strconv.Itoa(s.SkippedTicks)},
		{"Discarded", strconv.Itoa(s.Discarded)},
		{"Consecutive failures", strconv.Itoa(s.ConsecutiveFailures)},
		{"Offline", strconv.FormatBool(s.IsOffline())},
	}
	if s.LastResult != nil {
		rows = append(rows, []string{"Last result", s.LastResult.Summary()})
	}
	if s.LastError != "" {
		rows = append(rows, []string{"Last error", s.LastError})
	}
	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// Truncate shortens s to at most width runes, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
