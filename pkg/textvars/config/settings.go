package config

// Default engine settings.
const (
	DefaultCurrencySymbol       = "$"
	DefaultDateFormat           = "DD MMM YYYY"
	DefaultMaxPlaceholders      = 256
	DefaultMaxPlaceholderLength = 512
	DefaultMaxExpressionDepth   = 64
	MissingKeep                 = "keep"
	MissingEmpty                = "empty"
)

// Settings holds the tunables of a template engine.
type Settings struct {
	// CurrencySymbol is used for currency values whose definition has no format.
	CurrencySymbol string
	// DateFormat is used for date values whose definition has no format.
	DateFormat string
	// MaxPlaceholders caps the placeholders processed per text.
	MaxPlaceholders int
	// MaxPlaceholderLength caps the byte length of a placeholder body.
	MaxPlaceholderLength int
	// MaxExpressionDepth caps expression nesting.
	MaxExpressionDepth int
	// Missing is "keep" or "empty" and controls unresolved placeholders.
	Missing string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		CurrencySymbol:       DefaultCurrencySymbol,
		DateFormat:           DefaultDateFormat,
		MaxPlaceholders:      DefaultMaxPlaceholders,
		MaxPlaceholderLength: DefaultMaxPlaceholderLength,
		MaxExpressionDepth:   DefaultMaxExpressionDepth,
		Missing:              MissingKeep,
	}
}

// Settings extracts engine settings, falling back to DefaultSettings for
// missing or invalid keys. Non-positive limits are ignored.
//
// Recognized keys:
//
//	currency_symbol, date_format, max_placeholders,
//	max_placeholder_length, max_expression_depth, missing
func (c Config) Settings() Settings {
	s := DefaultSettings()
	s.CurrencySymbol = c.String("currency_symbol", s.CurrencySymbol)
	s.DateFormat = c.String("date_format", s.DateFormat)
	if n := c.Int("max_placeholders", 0); n > 0 {
		s.MaxPlaceholders = n
	}
	if n := c.Int("max_placeholder_length", 0); n > 0 {
		s.MaxPlaceholderLength = n
	}
	if n := c.Int("max_expression_depth", 0); n > 0 {
		s.MaxExpressionDepth = n
	}
	switch m := c.String("missing", s.Missing); m {
	case MissingKeep, MissingEmpty:
		s.Missing = m
	}
	return s
}
