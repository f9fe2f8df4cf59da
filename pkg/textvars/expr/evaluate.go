package expr

import (
	"math"
	"strings"
)

// Default evaluator limits.
const (
	DefaultMaxDepth  = 64
	DefaultMaxLength = 512
)

// Evaluator parses and evaluates expressions.
// Evaluator is safe for concurrent use after construction.
type Evaluator struct {
	maxDepth  int
	maxLength int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth caps parenthesis, unary and conditional nesting.
// Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithMaxLength caps the byte length of an expression.
// Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxLength = n
		}
	}
}

// New creates an Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxDepth:  DefaultMaxDepth,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// lex trims raw, applies the length limit and tokenizes it.
func (e *Evaluator) lex(raw string) (string, []token, error) {
	src := strings.TrimSpace(raw)
	if len(src) > e.maxLength {
		return src, nil, &SyntaxError{Expr: src, Pos: e.maxLength, Msg: "expression too long"}
	}
	toks, err := tokenize(src)
	return src, toks, err
}

func (e *Evaluator) parseTokens(src string, toks []token) (Node, error) {
	p := &parser{src: src, toks: toks, maxDepth: e.maxDepth}
	return p.parse()
}

// Parse parses raw into an AST without resolving identifiers.
func (e *Evaluator) Parse(raw string) (Node, error) {
	src, toks, err := e.lex(raw)
	if err != nil {
		return nil, err
	}
	return e.parseTokens(src, toks)
}

// Check reports whether raw is well-formed and every identifier in it is
// known. Unknown identifiers are reported before syntax errors, so a call
// such as alert(1) is an *UnsafeError.
func (e *Evaluator) Check(raw string, known func(name string) bool) error {
	_, err := e.compile(raw, known)
	return err
}

func (e *Evaluator) compile(raw string, known func(name string) bool) (Node, error) {
	if known == nil {
		known = func(string) bool { return false }
	}
	src, toks, err := e.lex(raw)
	if err != nil {
		return nil, err
	}
	for _, t := range toks {
		if t.kind == tokIdent && !isBoolLiteral(t.text) && !known(t.text) {
			return nil, &UnsafeError{Expr: src, Name: t.text}
		}
	}
	return e.parseTokens(src, toks)
}

// Evaluate evaluates raw against vars. Every identifier must be a key of
// vars; values are converted with FromAny.
func (e *Evaluator) Evaluate(raw string, vars map[string]any) (Value, error) {
	n, err := e.compile(raw, func(name string) bool {
		_, ok := vars[name]
		return ok
	})
	if err != nil {
		return Value{}, err
	}
	ev := &evaluator{src: strings.TrimSpace(raw), vars: vars}
	return ev.eval(n)
}

var defaultEvaluator = New()

// Parse parses raw with the default limits.
func Parse(raw string) (Node, error) {
	return defaultEvaluator.Parse(raw)
}

// Check validates raw with the default limits.
func Check(raw string, known func(name string) bool) error {
	return defaultEvaluator.Check(raw, known)
}

// Evaluate evaluates raw with the default limits.
func Evaluate(raw string, vars map[string]any) (Value, error) {
	return defaultEvaluator.Evaluate(raw, vars)
}

// IsIdentifier reports whether s is a single identifier token: a letter,
// '_' or '$' followed by letters, digits, '_' or '$'.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

// Identifiers returns the distinct variable names in raw in order of first
// appearance, excluding true and false. Tokenizing stops at the first
// lexical error; names before it are still returned.
func Identifiers(raw string) []string {
	toks, _ := tokenize(strings.TrimSpace(raw))
	var names []string
	seen := make(map[string]struct{})
	for _, t := range toks {
		if t.kind != tokIdent || isBoolLiteral(t.text) {
			continue
		}
		if _, ok := seen[t.text]; ok {
			continue
		}
		seen[t.text] = struct{}{}
		names = append(names, t.text)
	}
	return names
}

// evaluator walks a checked AST.
type evaluator struct {
	src  string
	vars map[string]any
}

func (ev *evaluator) fail(n Node, msg string) error {
	return &RuntimeError{Expr: ev.src, Pos: n.Pos(), Msg: msg}
}

func (ev *evaluator) eval(n Node) (Value, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *Ident:
		v, ok := ev.vars[n.Name]
		if !ok {
			return Value{}, &UnsafeError{Expr: ev.src, Name: n.Name}
		}
		return FromAny(v), nil
	case *Unary:
		x, err := ev.eval(n.X)
		if err != nil {
			return Value{}, err
		}
		if x.Kind != KindNumber {
			return Value{}, ev.fail(n, "unary "+n.Op+" needs a number, got "+x.Kind.String())
		}
		if n.Op == "-" {
			return NumberValue(-x.Num), nil
		}
		return x, nil
	case *Binary:
		l, err := ev.eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := ev.eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return ev.binary(n, l, r)
	case *Conditional:
		c, err := ev.eval(n.Cond)
		if err != nil {
			return Value{}, err
		}
		if c.Truthy() {
			return ev.eval(n.Then)
		}
		return ev.eval(n.Else)
	default:
		return Value{}, &RuntimeError{Expr: ev.src, Msg: "unsupported node"}
	}
}

func (ev *evaluator) binary(n *Binary, l, r Value) (Value, error) {
	switch n.Op {
	case "+":
		if l.Kind == KindString || r.Kind == KindString {
			return StringValue(l.String() + r.String()), nil
		}
		if err := ev.numbers(n, l, r); err != nil {
			return Value{}, err
		}
		return NumberValue(l.Num + r.Num), nil
	case "-", "*", "/":
		if err := ev.numbers(n, l, r); err != nil {
			return Value{}, err
		}
		switch n.Op {
		case "-":
			return NumberValue(l.Num - r.Num), nil
		case "*":
			return NumberValue(l.Num * r.Num), nil
		}
		if r.Num == 0 {
			return Value{}, ev.fail(n, "division by zero")
		}
		return NumberValue(l.Num / r.Num), nil
	case "==":
		return BoolValue(equal(l, r)), nil
	case "!=":
		return BoolValue(!equal(l, r)), nil
	default:
		return ev.order(n, l, r)
	}
}

func (ev *evaluator) numbers(n *Binary, l, r Value) error {
	if l.Kind != KindNumber || r.Kind != KindNumber {
		return ev.fail(n, "operator "+n.Op+" needs numbers, got "+l.Kind.String()+" and "+r.Kind.String())
	}
	return nil
}

func (ev *evaluator) order(n *Binary, l, r Value) (Value, error) {
	var cmp int
	switch {
	case l.Kind == KindNumber && r.Kind == KindNumber:
		if math.IsNaN(l.Num) || math.IsNaN(r.Num) {
			return BoolValue(false), nil
		}
		switch {
		case l.Num < r.Num:
			cmp = -1
		case l.Num > r.Num:
			cmp = 1
		}
	case l.Kind == KindString && r.Kind == KindString:
		cmp = strings.Compare(l.Str, r.Str)
	default:
		return Value{}, ev.fail(n, "cannot order "+l.Kind.String()+" and "+r.Kind.String())
	}

	switch n.Op {
	case "<":
		return BoolValue(cmp < 0), nil
	case ">":
		return BoolValue(cmp > 0), nil
	case "<=":
		return BoolValue(cmp <= 0), nil
	case ">=":
		return BoolValue(cmp >= 0), nil
	}
	return Value{}, ev.fail(n, "unknown operator "+n.Op)
}

func equal(l, r Value) bool {
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case KindNumber:
		return l.Num == r.Num
	case KindBool:
		return l.Bool == r.Bool
	default:
		return l.Str == r.Str
	}
}
