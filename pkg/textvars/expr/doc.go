/*
Package expr evaluates the arithmetic and conditional expressions that appear
inside template placeholders.

# Overview

Expressions are tokenized, checked against the known variables, parsed into
an AST and then evaluated over a small closed value type. Nothing in an
expression can reach host code: there are no calls, no member access and no
assignment, and every identifier must resolve to a known variable before
evaluation starts.

# Expression Syntax

	<expr>    := <cmp> [ '?' <expr> ':' <expr> ]
	<cmp>     := <add> { ('>' | '<' | '>=' | '<=' | '==' | '!=') <add> }
	<add>     := <mul> { ('+' | '-') <mul> }
	<mul>     := <unary> { ('*' | '/') <unary> }
	<unary>   := ('-' | '+') <unary> | <primary>
	<primary> := number | string | identifier | true | false | '(' <expr> ')'

The conditional operator is right-associative and binds loosest, so
a ? b : c ? d : e reads as a ? b : (c ? d : e).

Numbers are decimal: 12, 3.5, .5. Strings use double quotes with \" and \\
escapes; single quotes are accepted as well. Identifiers match
[A-Za-z_$][A-Za-z0-9_$]*. Any other character, including '.', ',', ';',
'[', '!' on its own and '===', is a syntax error.

# Semantics

  - '+' concatenates when either side is a string, otherwise adds numbers
  - '-', '*' and '/' require numbers; division by zero is an error
  - '==' and '!=' compare values of the same kind; mixed kinds are unequal
  - ordering operators compare two numbers or two strings
  - the conditional treats false, 0, NaN and "" as false

Booleans are never coerced to numbers.

# Examples

	vars := map[string]any{"cartValue": 150.0, "freeShippingThreshold": 500.0}

	v, _ := expr.Evaluate("freeShippingThreshold - cartValue", vars)
	v.String() // "350"

	v, _ = expr.Evaluate(`cartValue >= 500 ? "FREE shipping!" : "Add more"`, vars)
	v.String() // "Add more"

	_, err := expr.Evaluate("alert(1)", vars)
	errors.Is(err, expr.ErrUnsafe) // true
*/
package expr
