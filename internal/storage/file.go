package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/tazhate/familytools/internal/calendar"
)

// Format of a user list file.
type Format string

const (
	FormatYAML      Format = "yaml"
	FormatJSON      Format = "json"
	FormatICalendar Format = "ics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".ics", ".ical":
		return FormatICalendar, nil
	default:
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

// LoadUsers reads a user list document without assuming its shape.
// YAML and JSON are returned as decoded; iCalendar events become
// {"name", "birthday"} mappings.
func LoadUsers(path string) (any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	doc, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a user list document in the given format.
func Decode(format Format, data []byte) (any, error) {
	var doc any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatICalendar:
		users, err := calendar.ReadUsers(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		list := make([]any, 0, len(users))
		for _, u := range users {
			list = append(list, map[string]any{"name": u.Name, "birthday": u.Birthday})
		}
		doc = list
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	return doc, nil
}
