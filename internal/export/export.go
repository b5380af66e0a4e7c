// Package export renders engine and storage values as JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats, for flag enums and help text.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml)", s)
	}
}

// Write encodes v to w. YAML output goes through the JSON encoding first so
// both formats share the same field names and null handling.
func Write(w io.Writer, format Format, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	switch format {
	case FormatJSON:
		data = append(data, '\n')
	case FormatYAML:
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q (want json or yaml)", format)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func jsonToYAML(data []byte) ([]byte, error) {
	// JSON is a subset of YAML, so the node tree keeps key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert to yaml: %w", err)
	}
	clearStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles inherited from the JSON source
// so the output reads as block YAML. The encoder still quotes strings that
// would otherwise resolve to another type.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
