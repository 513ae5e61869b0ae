// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/quotegen/internal/cmd/table"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatWide is a table without text truncation.
	FormatWide Format = "wide"
)

// Formatter renders data to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// Data represents data formatted for table output.
type Data = table.Data

// NewFormatter creates the formatter for format. Unknown formats render tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{Wide: format == FormatWide}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct {
	Wide bool
}

// Format renders known quotegen types with dedicated layouts, other structs
// and struct slices by reflection, and anything else as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return render(w, v)
	case []quotes.Quote:
		return render(w, table.Quotes(v, f.Wide))
	case quotes.Quote:
		return render(w, table.Quotes([]quotes.Quote{v}, true))
	case pkgsync.Status:
		return render(w, table.SyncStatus(v))
	}

	if d := reflectTable(data); d != nil {
		return render(w, *d)
	}
	return (&JSONFormatter{Indent: "  "}).Format(w, data)
}

func render(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if len(data.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			switch a {
			case table.AlignLeft:
				align[i] = tw.AlignLeft
			case table.AlignCenter:
				align[i] = tw.AlignCenter
			case table.AlignRight:
				align[i] = tw.AlignRight
			default:
				align[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		t.Header(headers...)
	}
	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := t.Append(cells...); err != nil {
			return err
		}
	}
	return t.Render()
}

// DetectFormat returns the explicit format if set, a table for terminals
// and JSON for pipes.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, wide", s)
	}
}

// reflectTable builds a table from a struct (as property/value rows) or a
// non-empty slice of structs (one row per element).
func reflectTable(data any) *Data {
	v := reflect.ValueOf(data)
	switch {
	case v.Kind() == reflect.Struct:
		rows := make([][]string, 0, v.NumField())
		for i := range v.NumField() {
			if name, ok := columnName(v.Type().Field(i)); ok {
				rows = append(rows, []string{name, fmt.Sprint(v.Field(i).Interface())})
			}
		}
		return &Data{Headers: []string{"Property", "Value"}, Rows: rows}

	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		elemType := v.Index(0).Type()
		var headers []string
		var fields []int
		for i := range elemType.NumField() {
			if name, ok := columnName(elemType.Field(i)); ok {
				headers = append(headers, name)
				fields = append(fields, i)
			}
		}
		rows := make([][]string, 0, v.Len())
		for i := range v.Len() {
			row := make([]string, 0, len(fields))
			for _, j := range fields {
				row = append(row, fmt.Sprint(v.Index(i).Field(j).Interface()))
			}
			rows = append(rows, row)
		}
		return &Data{Headers: headers, Rows: rows}
	}
	return nil
}

// columnName titles a field's json name; unexported and json:"-" fields are skipped.
func columnName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " ")), true
	}
	return field.Name, true
}
