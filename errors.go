package mallet

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedType       = "unsupported_type"
	CodeIncompatibleValidator = "incompatible_validator"
	CodeCyclicSchema          = "cyclic_schema"
	CodeLossyConversion       = "lossy_conversion"
)

// Issue represents a single conversion failure entry.
type Issue struct {
	Path    string // Dotted path from the root (for example: $.items[].price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	// Params carries structured parameters (e.g., {"kind":"string",
	// "validator":"range"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of conversion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unsupported_type at $.a.b
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
