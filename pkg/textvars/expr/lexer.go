package expr

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokOp
	tokLParen
	tokRParen
	tokQuestion
	tokColon
)

type token struct {
	kind tokenKind
	// text is the identifier name, operator, or decoded string literal.
	text string
	num  float64
	pos  int
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tokenize splits src into tokens. The returned slice always ends with a
// tokEOF token. On error the tokens read so far are returned with it.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})

		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			if i < len(src) && (isIdentStart(src[i]) || src[i] == '.') {
				return append(toks, token{kind: tokEOF, pos: i}), &SyntaxError{Expr: src, Pos: start, Msg: "malformed number"}
			}
			n, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return append(toks, token{kind: tokEOF, pos: i}), &SyntaxError{Expr: src, Pos: start, Msg: "malformed number"}
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], num: n, pos: start})

		case c == '"' || c == '\'':
			s, next, ok := readString(src, i)
			if !ok {
				return append(toks, token{kind: tokEOF, pos: i}), &SyntaxError{Expr: src, Pos: i, Msg: "unterminated string"}
			}
			toks = append(toks, token{kind: tokString, text: s, pos: i})
			i = next

		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == '?':
			toks = append(toks, token{kind: tokQuestion, text: "?", pos: i})
			i++
		case c == ':':
			toks = append(toks, token{kind: tokColon, text: ":", pos: i})
			i++

		default:
			op := readOperator(src, i)
			if op == "" {
				return append(toks, token{kind: tokEOF, pos: i}), &SyntaxError{Expr: src, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
			}
			toks = append(toks, token{kind: tokOp, text: op, pos: i})
			i += len(op)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// readOperator returns the operator at src[i], or "" if there is none.
// '===' and '!==' are rejected.
func readOperator(src string, i int) string {
	rest := src[i:]
	for _, op := range []string{">=", "<=", "==", "!="} {
		if strings.HasPrefix(rest, op) {
			if len(rest) > 2 && rest[2] == '=' {
				return ""
			}
			return op
		}
	}
	switch rest[0] {
	case '+', '-', '*', '/', '>', '<':
		return rest[:1]
	}
	return ""
}

// readString decodes the quoted literal starting at src[i]. It returns the
// decoded text and the offset just past the closing quote.
func readString(src string, i int) (string, int, bool) {
	quote := src[i]
	var b strings.Builder
	for j := i + 1; j < len(src); j++ {
		c := src[j]
		switch {
		case c == '\\' && j+1 < len(src) && (src[j+1] == quote || src[j+1] == '\\'):
			b.WriteByte(src[j+1])
			j++
		case c == quote:
			return b.String(), j + 1, true
		default:
			b.WriteByte(c)
		}
	}
	return "", len(src), false
}
