package expr

import "fmt"

// parser is a recursive descent parser over a token slice.
type parser struct {
	src      string
	toks     []token
	i        int
	depth    int
	maxDepth int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Expr: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// enter guards recursion depth. Every call must be paired with leave.
func (p *parser) enter(pos int) error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(pos, "expression nested deeper than %d", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parse() (Node, error) {
	if p.peek().kind == tokEOF {
		return nil, p.errorf(0, "empty expression")
	}
	n, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t.pos, "unexpected %q", t.text)
	}
	return n, nil
}

func (p *parser) parseConditional() (Node, error) {
	if err := p.enter(p.peek().pos); err != nil {
		return nil, err
	}
	defer p.leave()

	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	q := p.peek()
	if q.kind != tokQuestion {
		return cond, nil
	}
	p.next()

	then, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if t := p.next(); t.kind != tokColon {
		return nil, p.errorf(t.pos, "expected ':' in conditional")
	}
	els, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return &Conditional{Cond: cond, Then: then, Else: els, Offset: q.pos}, nil
}

func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || !isComparison(t.text) {
			return left, nil
		}
		p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: t.text, Left: left, Right: right, Offset: t.pos}
	}
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: t.text, Left: left, Right: right, Offset: t.pos}
	}
}

func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: t.text, Left: left, Right: right, Offset: t.pos}
	}
}

func (p *parser) parseUnary() (Node, error) {
	t := p.peek()
	if t.kind != tokOp || (t.text != "-" && t.text != "+") {
		return p.parsePrimary()
	}
	p.next()
	if err := p.enter(t.pos); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: t.text, X: x, Offset: t.pos}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &Literal{Value: NumberValue(t.num), Offset: t.pos}, nil
	case tokString:
		return &Literal{Value: StringValue(t.text), Offset: t.pos}, nil
	case tokIdent:
		if isBoolLiteral(t.text) {
			return &Literal{Value: BoolValue(t.text == "true"), Offset: t.pos}, nil
		}
		return &Ident{Name: t.text, Offset: t.pos}, nil
	case tokLParen:
		n, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, p.errorf(c.pos, "expected ')'")
		}
		return n, nil
	case tokEOF:
		return nil, p.errorf(t.pos, "unexpected end of expression")
	default:
		return nil, p.errorf(t.pos, "unexpected %q", t.text)
	}
}

func isComparison(op string) bool {
	switch op {
	case ">", "<", ">=", "<=", "==", "!=":
		return true
	}
	return false
}
