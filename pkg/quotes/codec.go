package quotes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
)

// Format is a file format for export and import.
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// String returns the string representation of a format.
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat parses a format name. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.NewValidationError("format", s, "must be one of json, yaml, toml")
	}
}

// FormatFromPath picks a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlDocument wraps the list since TOML has no top-level arrays.
type tomlDocument struct {
	Quotes []Quote `toml:"quotes"`
}

// Encode serializes list in the given format. JSON uses two-space
// indentation and a trailing newline.
func Encode(format Format, list []Quote) ([]byte, error) {
	if list == nil {
		list = []Quote{}
	}

	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return nil, errors.WrapParse(string(FormatJSON), "", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(list)
		if err != nil {
			return nil, errors.WrapParse(string(format), "", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(tomlDocument{Quotes: list})
		if err != nil {
			return nil, errors.WrapParse(string(format), "", err)
		}
		return data, nil
	default:
		return nil, errors.NewValidationError("format", string(format), "unsupported format")
	}
}

// Decode parses an exported document. Anything that is not an array of
// quotes with non-empty text and category returns an ImportFormatError;
// no partial result is returned.
func Decode(format Format, data []byte) ([]Quote, error) {
	if format == "" {
		format = FormatJSON
	}
	if len(data) > constants.MaxImportBytes {
		return nil, errors.NewImportFormatError(string(format),
			fmt.Sprintf("document exceeds %d bytes", constants.MaxImportBytes), nil)
	}

	var (
		list []Quote
		err  error
	)
	switch format {
	case FormatJSON:
		list, err = decodeJSON(data)
	case FormatYAML:
		list, err = decodeYAML(data)
	case FormatTOML:
		list, err = decodeTOML(data)
	default:
		return nil, errors.NewValidationError("format", string(format), "unsupported format")
	}
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i] = list[i].Normalized()
		if verr := list[i].Validate(); verr != nil {
			var v *errors.ValidationError
			msg := verr.Error()
			if errors.As(verr, &v) {
				msg = v.Field + " " + v.Message
			}
			return nil, &errors.ImportFormatError{Format: string(format), Index: i, Message: msg, Err: verr}
		}
	}
	return list, nil
}

func decodeJSON(data []byte) ([]Quote, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.NewImportFormatError(string(FormatJSON), "document is not an array", nil)
	}
	var list []Quote
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, errors.NewImportFormatError(string(FormatJSON), err.Error(), err)
	}
	return list, nil
}

func decodeYAML(data []byte) ([]Quote, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewImportFormatError(string(FormatYAML), err.Error(), err)
	}
	if _, ok := doc.([]any); !ok {
		return nil, errors.NewImportFormatError(string(FormatYAML), "document is not a sequence", nil)
	}
	var list []Quote
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.NewImportFormatError(string(FormatYAML), err.Error(), err)
	}
	return list, nil
}

func decodeTOML(data []byte) ([]Quote, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewImportFormatError(string(FormatTOML), err.Error(), err)
	}
	if _, ok := raw["quotes"].([]any); !ok {
		return nil, errors.NewImportFormatError(string(FormatTOML), "document has no quotes array", nil)
	}
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewImportFormatError(string(FormatTOML), err.Error(), err)
	}
	return doc.Quotes, nil
}
