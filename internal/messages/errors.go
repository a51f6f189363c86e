package messages

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/dbpinger/internal/constants"
)

// FormatFailure formats a fatal error line with the failure prefix.
//
// Parameters:
//   - err: The error to format
//
// Returns:
//   - Formatted string like "❌ DATABASE_URI not configured"
func FormatFailure(err error) string {
	return constants.MsgFailurePrefix + err.Error()
}

// FormatValidationErrors formats a list of validation errors with numbering.
//
// Parameters:
//   - errs: Slice of validation errors to format
//
// Returns:
//   - Formatted string with all validation errors numbered (1, 2, 3...)
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	builder := &strings.Builder{}

	// Add validation error header
	builder.WriteString(constants.MsgConfigValidationError)

	// Add each validation error with numbering
	for i, err := range errs {
		builder.WriteString(fmt.Sprintf(constants.MsgConfigValidatePrefix, fmt.Sprintf("%d. %v", i+1, err)))
	}

	return strings.TrimRight(builder.String(), "\n")
}
