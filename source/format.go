package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is a document format.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name; the empty string and "auto" select detection.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q (want json or yaml)", name)
	}
}

// FormatOf guesses the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// LoadFile reads and decodes the document at path. With FormatAuto the
// format follows the file extension.
func LoadFile(path string, format Format) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == FormatAuto {
		format = FormatOf(path)
	}

	v, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return v, nil
}

// Load reads and decodes a whole document from r.
func Load(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return Decode(data, format)
}

// Decode decodes data in the given format. FormatAuto tries JSON first and
// falls back to YAML.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		if v, err := DecodeJSON(data); err == nil {
			return v, nil
		}
		return DecodeYAML(data)
	}
}
