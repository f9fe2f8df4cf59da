package expr

import "strconv"

// Node is a parsed expression.
type Node interface {
	// Pos returns the byte offset of the node in the source expression.
	Pos() int
	String() string
}

// Literal is a number, string or boolean constant.
type Literal struct {
	Value  Value
	Offset int
}

// Ident is a variable reference.
type Ident struct {
	Name   string
	Offset int
}

// Unary is a prefix '-' or '+'.
type Unary struct {
	Op     string
	X      Node
	Offset int
}

// Binary is an arithmetic or comparison operation.
type Binary struct {
	Op          string
	Left, Right Node
	Offset      int
}

// Conditional is cond ? then : else.
type Conditional struct {
	Cond, Then, Else Node
	Offset           int
}

func (n *Literal) Pos() int     { return n.Offset }
func (n *Ident) Pos() int       { return n.Offset }
func (n *Unary) Pos() int       { return n.Offset }
func (n *Binary) Pos() int      { return n.Offset }
func (n *Conditional) Pos() int { return n.Offset }

func (n *Literal) String() string {
	if n.Value.Kind == KindString {
		return strconv.Quote(n.Value.Str)
	}
	return n.Value.String()
}

func (n *Ident) String() string { return n.Name }

func (n *Unary) String() string { return "(" + n.Op + n.X.String() + ")" }

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *Conditional) String() string {
	return "(" + n.Cond.String() + " ? " + n.Then.String() + " : " + n.Else.String() + ")"
}

// Walk calls fn for n and every node below it, depth first.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	switch n := n.(type) {
	case *Unary:
		Walk(n.X, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Conditional:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	}
}

// isBoolLiteral reports whether name is the literal true or false.
func isBoolLiteral(name string) bool {
	return name == "true" || name == "false"
}

