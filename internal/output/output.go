package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Out is where results are written.
var Out io.Writer = os.Stdout

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// Print serializes v to Out in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to Out as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to Out as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to Out as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Out)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
