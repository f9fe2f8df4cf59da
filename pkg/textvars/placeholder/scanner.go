package placeholder

import "strings"

// Default scan limits.
const (
	DefaultMaxPlaceholders = 256
	DefaultMaxLength       = 512
)

// Result is the outcome of a scan.
type Result struct {
	// Placeholders are the well-formed spans in text order.
	Placeholders []Placeholder
	// Errors are the rejected regions (*NestedBraceError, *LimitError).
	Errors []error
}

// Scanner finds placeholders in text.
// Scanner is safe for concurrent use after construction.
type Scanner struct {
	maxPlaceholders int
	maxLength       int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxPlaceholders caps the number of placeholders returned per scan.
// Non-positive values are ignored.
func WithMaxPlaceholders(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxPlaceholders = n
		}
	}
}

// WithMaxLength caps the byte length of a placeholder body.
// Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// NewScanner creates a Scanner with the given options.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		maxPlaceholders: DefaultMaxPlaceholders,
		maxLength:       DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the placeholders in text. It makes a single pass over text.
//
// A span is a '{', at least one non-space byte without braces, and a '}'.
// Empty spans ("{}", "{ }"), an unmatched '{' and a stray '}' are literal
// text and are not reported. An unmatched '{' followed by a later span
// makes the rest of the text one unclosed nested region.
func (s *Scanner) Scan(text string) Result {
	var res Result
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '{')
		if open < 0 {
			break
		}
		open += i

		end, nested := spanEnd(text, open)
		if end < 0 {
			if nested {
				res.Errors = append(res.Errors, &NestedBraceError{Offset: open, Text: text[open:]})
			}
			break
		}
		raw := text[open:end]
		if nested {
			res.Errors = append(res.Errors, &NestedBraceError{Offset: open, Text: raw})
			i = end
			continue
		}

		content := raw[1 : len(raw)-1]
		switch {
		case strings.TrimSpace(content) == "":
		case len(content) > s.maxLength:
			res.Errors = append(res.Errors, &LimitError{Limit: "length", Max: s.maxLength, Offset: open})
		case len(res.Placeholders) >= s.maxPlaceholders:
			res.Errors = append(res.Errors, &LimitError{Limit: "count", Max: s.maxPlaceholders, Offset: open})
			return res
		default:
			p := Classify(content)
			p.Start = open
			p.End = end
			p.Raw = raw
			res.Placeholders = append(res.Placeholders, p)
		}
		i = end
	}
	return res
}

// spanEnd returns the exclusive end of the region opened at open and
// whether it contains nested braces. A region with nested braces ends where
// its brace depth returns to zero. end is -1 if the region never closes.
func spanEnd(text string, open int) (end int, nested bool) {
	depth := 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case '{':
			depth++
			if depth > 1 {
				nested = true
			}
		case '}':
			depth--
			if depth == 0 {
				return j + 1, nested
			}
		}
	}
	return -1, nested
}

var defaultScanner = NewScanner()

// Scan returns the placeholders in text using the default limits.
func Scan(text string) Result {
	return defaultScanner.Scan(text)
}

// Contains reports whether text has at least one well-formed placeholder.
func Contains(text string) bool {
	return len(defaultScanner.Scan(text).Placeholders) > 0
}
