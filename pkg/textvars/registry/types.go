package registry

import (
	"fmt"
	"strings"
)

// Type is the declared type of a variable.
type Type string

// Variable types.
const (
	TypeString     Type = "string"
	TypeNumber     Type = "number"
	TypeBoolean    Type = "boolean"
	TypeDate       Type = "date"
	TypeCurrency   Type = "currency"
	TypePercentage Type = "percentage"
)

// ParseType parses a type name case-insensitively.
// An empty name parses as TypeString.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TypeString, nil
	case TypeString, TypeNumber, TypeBoolean, TypeDate, TypeCurrency, TypePercentage:
		return t, nil
	default:
		return "", fmt.Errorf("unknown variable type %q", s)
	}
}

// IsNumeric reports whether values of t are stored as float64.
func (t Type) IsNumeric() bool {
	return t == TypeNumber || t == TypeCurrency || t == TypePercentage
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category groups variables for display.
type Category string

// Variable categories.
const (
	CategoryUser    Category = "user"
	CategoryCart    Category = "cart"
	CategoryProduct Category = "product"
	CategoryApp     Category = "app"
	CategoryCustom  Category = "custom"
)

// ParseCategory parses a category name case-insensitively.
// An empty name parses as CategoryCustom.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryCustom, nil
	case CategoryUser, CategoryCart, CategoryProduct, CategoryApp, CategoryCustom:
		return c, nil
	default:
		return "", fmt.Errorf("unknown variable category %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Definition describes a named, typed variable.
type Definition struct {
	// ID is a stable identifier. Generated when empty.
	ID string `json:"id" yaml:"id"`
	// Name is the unique key used in placeholders.
	Name string `json:"name" yaml:"name"`
	// Type is the declared value type.
	Type Type `json:"type" yaml:"type"`
	// DefaultValue seeds the variable and is restored by ResetToDefaults.
	DefaultValue any `json:"default" yaml:"default"`
	// Description is shown to editors.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Category groups the variable.
	Category Category `json:"category" yaml:"category"`
	// Format is a display hint: a currency symbol or a date pattern.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}
