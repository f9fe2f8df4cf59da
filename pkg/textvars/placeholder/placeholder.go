// Package placeholder finds and classifies {...} spans in template text.
//
// Classification of a span's content c follows a fixed precedence:
//
//  1. c contains '?'                        → conditional expression
//  2. c contains any of + - * / < > =       → expression
//  3. c contains '|'                        → simple reference with a format: {name | format}
//  4. otherwise                             → simple reference: {name}
//
// Operator detection wins over pipe parsing, so {a | b + c} is an expression.
//
// Nested braces are not supported. A '{' inside an open span is reported as
// a *NestedBraceError and the whole region is left verbatim; it is never
// re-split into smaller spans.
//
// An unmatched '{' opens a region that runs to the end of the text when no
// later '}' closes it. A stray '{' before a valid span therefore swallows
// that span: in "Use { here. Hi {userName}" the region from the first '{'
// is reported as a *NestedBraceError and nothing after it is substituted.
// An unmatched '{' with no later braces is plain literal text.
package placeholder

import "strings"

// Kind is the classification of a placeholder.
type Kind int

const (
	// KindSimpleRef is a variable reference with an optional pipe format.
	KindSimpleRef Kind = iota
	// KindExpression is an arithmetic, comparison or conditional expression.
	KindExpression
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSimpleRef:
		return "simple"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Placeholder is a classified {...} span.
type Placeholder struct {
	Kind Kind
	// Start and End are byte offsets of the span in the scanned text,
	// braces included. End is exclusive.
	Start, End int
	// Raw is the span text including braces.
	Raw string
	// Content is the trimmed text between the braces.
	Content string

	// Name and Format are set for KindSimpleRef.
	Name   string
	Format string

	// IsConditional is set for KindExpression when the content contains '?'.
	IsConditional bool
}

// operatorChars are the characters that mark content as an expression.
const operatorChars = "+-*/<>="

// Classify classifies placeholder content. Only Kind, Content, Name, Format
// and IsConditional are set.
func Classify(content string) Placeholder {
	c := strings.TrimSpace(content)
	p := Placeholder{Content: c}
	switch {
	case strings.Contains(c, "?"):
		p.Kind = KindExpression
		p.IsConditional = true
	case strings.ContainsAny(c, operatorChars):
		p.Kind = KindExpression
	case strings.Contains(c, "|"):
		name, format, _ := strings.Cut(c, "|")
		p.Kind = KindSimpleRef
		p.Name = strings.TrimSpace(name)
		p.Format = strings.TrimSpace(format)
	default:
		p.Kind = KindSimpleRef
		p.Name = c
	}
	return p
}
