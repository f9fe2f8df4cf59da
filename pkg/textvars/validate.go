package textvars

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/randalmurphal/textvars/pkg/textvars/expr"
	"github.com/randalmurphal/textvars/pkg/textvars/placeholder"
)

// Validation is the result of ValidateExpression.
type Validation struct {
	Valid bool
	// Error describes the first problem found. Empty when Valid.
	Error string
	// Variables lists the names the expression references.
	Variables []string
	// Suggestion is the closest registered name to an unknown variable.
	Suggestion string
}

// ValidateExpression checks a placeholder body before it is saved. The
// surrounding braces are optional. Every referenced name must be registered;
// the first that is not is reported, along with a suggestion when a
// registered name resembles it. Syntax is checked after names. The
// expression is never evaluated.
func (e *Engine) ValidateExpression(raw string) Validation {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}") && len(body) >= 2 {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return Validation{Error: "empty expression"}
	}

	p := placeholder.Classify(body)
	if p.Kind == placeholder.KindSimpleRef {
		v := Validation{Variables: []string{p.Name}}
		if !e.reg.Has(p.Name) {
			v.Error = (&UnknownVariableError{Name: p.Name}).Error()
			v.Suggestion = e.suggest(p.Name)
			return v
		}
		v.Valid = true
		return v
	}

	v := Validation{Variables: expr.Identifiers(body)}
	for _, name := range v.Variables {
		if !e.reg.Has(name) {
			v.Error = (&UnknownVariableError{Name: name}).Error()
			v.Suggestion = e.suggest(name)
			return v
		}
	}
	if err := e.evaluator.Check(body, e.reg.Has); err != nil {
		v.Error = err.Error()
		return v
	}
	v.Valid = true
	return v
}

// suggest returns the registered name that best matches name.
func (e *Engine) suggest(name string) string {
	defs := e.reg.Definitions()
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		// Try the other direction: a registered name hidden in a longer typo.
		for _, n := range names {
			if fuzzy.MatchFold(n, name) {
				ranks = append(ranks, fuzzy.Rank{Source: n, Target: n, Distance: len(name) - len(n)})
			}
		}
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}

// String formats the validation result for logs.
func (v Validation) String() string {
	if v.Valid {
		return fmt.Sprintf("valid %v", v.Variables)
	}
	if v.Suggestion != "" {
		return fmt.Sprintf("invalid: %s (did you mean %q?)", v.Error, v.Suggestion)
	}
	return "invalid: " + v.Error
}
