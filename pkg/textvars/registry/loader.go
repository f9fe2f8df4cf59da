package registry

import (
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/config"
)

// LoadDefinitions reads custom variable definitions from a YAML or JSON file.
// See DefinitionsFromConfig for the document shape.
func LoadDefinitions(path string) ([]Definition, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, err
	}
	return DefinitionsFromConfig(cfg)
}

// ParseDefinitions decodes definitions from data in the given format.
func ParseDefinitions(data []byte, format config.Format) ([]Definition, error) {
	cfg, err := config.Parse(data, format)
	if err != nil {
		return nil, err
	}
	return DefinitionsFromConfig(cfg)
}

// DefinitionsFromConfig extracts the "variables" list:
//
//	variables:
//	  - name: couponCode
//	    type: string
//	    default: WELCOME10
//	    category: custom
//	    description: Code shown in the banner
//	    format: ""
//
// Unlike registry operations, loading is strict: an entry without a name or
// with an unknown type or category is an error, since it indicates a broken
// file rather than a live edit.
func DefinitionsFromConfig(cfg config.Config) ([]Definition, error) {
	items := cfg.List("variables")
	defs := make([]Definition, 0, len(items))
	for i, item := range items {
		def, err := definitionFromConfig(item)
		if err != nil {
			return nil, fmt.Errorf("variables[%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func definitionFromConfig(item config.Config) (Definition, error) {
	name := item.String("name", "")
	if name == "" {
		return Definition{}, fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}
	t, err := ParseType(item.String("type", ""))
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, name, err)
	}
	cat, err := ParseCategory(item.String("category", ""))
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, name, err)
	}
	return Definition{
		ID:           item.String("id", ""),
		Name:         name,
		Type:         t,
		DefaultValue: item.Any("default", nil),
		Description:  item.String("description", ""),
		Category:     cat,
		Format:       item.String("format", ""),
	}, nil
}
