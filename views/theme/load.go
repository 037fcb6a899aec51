package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOverridesFile decodes a YAML override document from path.
func LoadOverridesFile(path string) (PartialConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PartialConfig{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return decodeOverrides(path, bytes.NewReader(data))
}

// LoadOverrides decodes a YAML override document. Keys use the camelCase
// names of the schema; unknown keys are rejected. An empty document yields
// an empty override.
func LoadOverrides(r io.Reader) (PartialConfig, error) {
	return decodeOverrides("<reader>", r)
}

func decodeOverrides(path string, r io.Reader) (PartialConfig, error) {
	var out PartialConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return PartialConfig{}, nil
		}
		return PartialConfig{}, &ParseError{Path: path, Line: extractLine(err), Message: err.Error(), Err: err}
	}
	return out, nil
}

// MarshalOverrides encodes overrides as YAML. Absent keys are omitted.
func MarshalOverrides(o PartialConfig) ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode theme overrides: %w", err)
	}
	return data, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
