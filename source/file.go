package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/gotable"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// DecodeJSON reads a JSON array of objects. Nested objects and arrays are kept
// as their JSON text, and numbers out of float64 range as their literal.
func DecodeJSON(r io.Reader) (gotable.RecordSet, error) {
	var records gotable.RecordSet
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot decode json records: %w", err)
	}

	return lo.Ternary(records == nil, gotable.RecordSet{}, records), nil
}

// DecodeYAML reads a YAML sequence of mappings. Nested mappings and sequences
// are kept as their JSON text.
func DecodeYAML(r io.Reader) (gotable.RecordSet, error) {
	var rows []map[string]any
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode yaml records: %w", err)
	}

	for _, row := range rows {
		for k, v := range row {
			row[k] = flatten(v)
		}
	}

	return gotable.RecordsFromMaps(rows), nil
}

// LoadFile decodes the records stored at path, choosing the format by file
// extension: .json, .yaml or .yml.
func LoadFile(path string) (gotable.RecordSet, error) {
	var decode func(io.Reader) (gotable.RecordSet, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, fmt.Errorf("cannot load '%s': %w '%s'", path, ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load records: %w", err)
	}
	defer f.Close()

	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load '%s': %w", path, err)
	}

	return records, nil
}

func flatten(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return v
	}
}
