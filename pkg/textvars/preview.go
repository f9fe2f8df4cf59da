package textvars

import "context"

// Preview is the result of PreviewWithVariables.
type Preview struct {
	// Original is the input text.
	Original string
	// Evaluated is the rendered text.
	Evaluated string
	// Variables maps each variable a placeholder used to the value it was
	// rendered with. Unresolved names are absent.
	Variables map[string]any
}

// PreviewWithVariables renders text and reports the values it used.
func (e *Engine) PreviewWithVariables(text string, overrides map[string]any) Preview {
	out, used := e.render(context.Background(), text, overrides)
	return Preview{
		Original:  text,
		Evaluated: out,
		Variables: used,
	}
}
