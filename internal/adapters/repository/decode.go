package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/okian/podium/internal/domain/model"
)

// Format identifies the encoding of a medal data document.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// medalDoc is the document shape of one record. Counts are pointers so a
// missing field can be told apart from zero.
type medalDoc struct {
	Code   string `json:"code" yaml:"code" validate:"required"`
	Gold   *int   `json:"gold" yaml:"gold" validate:"required"`
	Silver *int   `json:"silver" yaml:"silver" validate:"required"`
	Bronze *int   `json:"bronze" yaml:"bronze" validate:"required"`
}

// decodeMedals parses and validates a medal data document.
func decodeMedals(data []byte, format Format) ([]model.Medal, error) {
	var docs []medalDoc
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&docs); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrLoadData, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrLoadData, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	medals := make([]model.Medal, len(docs))
	for i, d := range docs {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidData, i, err)
		}
		medals[i] = model.Medal{Code: d.Code, Gold: *d.Gold, Silver: *d.Silver, Bronze: *d.Bronze}
	}
	if err := validateMedals(medals); err != nil {
		return nil, err
	}
	return medals, nil
}

// validateMedals checks field constraints and that no code repeats.
func validateMedals(medals []model.Medal) error {
	seen := make(map[string]int, len(medals))
	for i, m := range medals {
		if err := validate.Struct(m); err != nil {
			return fmt.Errorf("%w: record %d (%q): %v", ErrInvalidData, i, m.Code, err)
		}
		if j, dup := seen[m.Code]; dup {
			return fmt.Errorf("%w: duplicate code %q in records %d and %d", ErrInvalidData, m.Code, j, i)
		}
		seen[m.Code] = i
	}
	return nil
}
