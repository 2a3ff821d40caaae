package mallet

import "fmt"

// Diagnostic records one non-fatal, lossy or best-effort mapping decision
// made during a conversion (FixedPoint approximation, Luhn omission, lenient
// validator skips). Diagnostics are advisory: a complete, valid document is
// still produced alongside them.
type Diagnostic struct {
	Path    string // Dotted path of the node the decision applies to.
	Code    string // One of the issue codes, typically lossy_conversion.
	Message string
	// Params carries structured parameters for logging and i18n.
	Params map[string]any
}

// Diagnostics is the conversion-scoped list returned alongside a document.
type Diagnostics []Diagnostic

// HasWarnings reports whether any diagnostic was recorded.
func (ds Diagnostics) HasWarnings() bool { return len(ds) > 0 }

// Messages renders the diagnostics as "code at path: message" strings for
// caller-side logging.
func (ds Diagnostics) Messages() []string {
	if len(ds) == 0 {
		return nil
	}
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, fmt.Sprintf("%s at %s: %s", d.Code, d.Path, d.Message))
	}
	return out
}
