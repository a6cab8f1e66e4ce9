package chatcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/chatcard/i18n"
)

// Issue codes
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
)

// BuildError reports a required field left unset when a builder was
// finalized.
type BuildError struct {
	Entity string // Entity type name, e.g. "OpenLink".
	Field  string // Wire name of the missing field, e.g. "url".
	Code   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("chatcard: build %s: %q %s", e.Entity, e.Field, i18n.T(e.Code, map[string]string{"field": e.Field}))
}

// AsBuildError extracts a *BuildError from err using errors.As.
func AsBuildError(err error) (*BuildError, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// Issue is a single diagnostic about a message document, located by a JSON
// Pointer into the wire format.
type Issue struct {
	Path    string // JSON Pointer (for example: /cards/0/header/title).
	Code    string
	Message string
	Hint    string         // Optional: remediation hints.
	Cause   error          // Optional: underlying error.
	Params  map[string]any // Optional structured parameters such as the input line.
}

// Issues is a collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. required at /cards/0/sections/0/widgets/0/textParagraph/text
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
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
	return append(dst, more...)
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
