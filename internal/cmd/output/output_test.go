package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

var sample = quotes.Quote{ID: 7, Text: "Simplicity is prerequisite for reliability.", Category: "Wisdom"}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatterDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	q := quotes.Quote{ID: 1, Text: "a < b & c", Category: "Math"}
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, q))
	assert.Contains(t, buf.String(), `"a < b & c"`)

	var decoded quotes.Quote
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, q, decoded)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, []quotes.Quote{sample}))
	out := buf.String()
	assert.Contains(t, out, "- id: 7")
	assert.Contains(t, out, "category: Wisdom")
}

func TestTableFormatterQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []quotes.Quote{sample}))
	out := buf.String()
	assert.Contains(t, out, "Wisdom")
	assert.Contains(t, out, "Simplicity")
	assert.Contains(t, strings.ToUpper(out), "CATEGORY")
}

func TestTableFormatterStatus(t *testing.T) {
	var buf bytes.Buffer
	status := pkgsync.Status{Running: true, Interval: "30s", Cycles: 3}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, status))
	assert.Contains(t, buf.String(), "30s")
}

func TestTableFormatterReflectsStructs(t *testing.T) {
	var buf bytes.Buffer
	result := quotes.MergeResult{Added: 2, Updated: 1}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, result))
	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "ADDED")
	assert.Contains(t, out, "UPDATED")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count":3}`, buf.String())
}

func TestReflectTableSkipsHiddenFields(t *testing.T) {
	type row struct {
		Name    string `json:"display_name"`
		Secret  string `json:"-"`
		private string
	}
	d := reflectTable([]row{{Name: "a", Secret: "s", private: "p"}})
	require.NotNil(t, d)
	assert.Equal(t, []string{"Display Name"}, d.Headers)
	assert.Equal(t, [][]string{{"a"}}, d.Rows)
	assert.Nil(t, reflectTable(42))
}

func TestWriteQuotePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQuote(&buf, FormatTable, sample, false))
	assert.Equal(t, "\"Simplicity is prerequisite for reliability.\"\n  - Wisdom (#7)\n", buf.String())
}

func TestWriteQuoteCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQuote(&buf, FormatTable, sample, true))
	out := buf.String()
	assert.Contains(t, out, "Simplicity is prerequisite")
	assert.Contains(t, out, "Wisdom")
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "╭")
}

func TestWriteQuoteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQuote(&buf, FormatJSON, sample, true))
	assert.JSONEq(t, `{"id":7,"text":"Simplicity is prerequisite for reliability.","category":"Wisdom"}`, buf.String())
}
