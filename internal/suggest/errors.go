package suggest

import (
	"fmt"

	"github.com/musewave/musewave-api/internal/textutil"
)

const diagnosticCap = 160

// ExhaustedError is the only failure that crosses the engine boundary: no
// candidate from the generator or the offline fallback was accepted. It
// carries the field and a truncated upstream diagnostic, never a stack trace.
type ExhaustedError struct {
	Field      Field
	Diagnostic string
}

func (e *ExhaustedError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("no suggestion available for %s", e.Field)
	}
	return fmt.Sprintf("no suggestion available for %s: %s", e.Field, e.Diagnostic)
}

func newExhaustedError(field Field, lastErr error) *ExhaustedError {
	diag := ""
	if lastErr != nil {
		diag = textutil.Truncate(lastErr.Error(), diagnosticCap)
	}
	return &ExhaustedError{Field: field, Diagnostic: diag}
}
