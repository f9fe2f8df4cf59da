package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is the pattern used when neither the pipe nor the
// definition names one.
const DefaultDateFormat = "DD MMM YYYY"

// dateLayouts are the string forms ParseDate accepts, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// dateTokens are matched longest first at each position of a pattern.
var dateTokens = []string{"YYYY", "YY", "MMMM", "MMM", "MM", "M", "DD", "D"}

// ParseDate converts v to a time. It accepts time.Time, the string layouts
// above and unix seconds as any Go number or numeric string.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d != nil {
			return *d, nil
		}
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(n, 0).UTC(), nil
		}
	default:
		if n, ok := toNumber(v); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return time.Unix(int64(n), 0).UTC(), nil
		}
	}
	return time.Time{}, &InvalidDateError{Value: v}
}

// FormatDate renders v with pattern. Tokens YYYY, YY, MMMM, MMM, MM, M, DD
// and D are replaced; all other text is copied. An empty pattern uses
// DefaultDateFormat. An unparsable value is returned stringified with an
// *InvalidDateError. Empty values render as "".
func FormatDate(v any, pattern string) (string, error) {
	if v == nil || v == "" {
		return "", nil
	}
	t, err := ParseDate(v)
	if err != nil {
		return stringify(v), err
	}
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	return applyPattern(t, pattern), nil
}

func applyPattern(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	for i := 0; i < len(pattern); {
		tok := matchToken(pattern[i:])
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, tok))
		i += len(tok)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range dateTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func renderToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return strconv.Itoa(t.Year())
	case "YY":
		return pad2(t.Year() % 100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return pad2(int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return pad2(t.Day())
	default:
		return strconv.Itoa(t.Day())
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
