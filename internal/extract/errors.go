package extract

import (
	"errors"
	"fmt"
	"go/token"
)

// Sentinel errors, one per violated precondition.
var (
	ErrNotARecord      = errors.New("declaration is not a struct")
	ErrNotAnIdentifier = errors.New("field pattern is not a simple identifier")
	ErrMissingType     = errors.New("field has no type annotation")
	ErrUnsupportedType = errors.New("field type is not supported")
)

// ExpansionError describes why a declaration could not be expanded.
// It unwraps to one of the sentinel errors above.
type ExpansionError struct {
	Kind   error          // One of the Err* sentinels
	Decl   string         // Name of the annotated declaration
	Field  string         // Offending field, empty for declaration-level errors
	Detail string         // Extra context, e.g. the offending type text
	Pos    token.Position // Position of the offending node
}

// Error returns the error message.
func (e *ExpansionError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}

	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Decl, e.Field, msg)
	}

	return fmt.Sprintf("%s: %s", e.Decl, msg)
}

// Unwrap returns the sentinel error.
func (e *ExpansionError) Unwrap() error {
	return e.Kind
}
