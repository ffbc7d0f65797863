package providers

import (
	"errors"
	"fmt"
)

// ErrorCategory normalizes vendor-call failures before they are folded into a
// check result's Error string.
type ErrorCategory string

const (
	// ErrorTimeout indicates the vendor took too long to respond.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the vendor returned invalid or malformed data.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues.
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorVendorOutage indicates the vendor is unavailable.
	ErrorVendorOutage ErrorCategory = "vendor_outage"

	// ErrorValidation indicates the vendor rejected the submitted evidence.
	ErrorValidation ErrorCategory = "validation"

	// ErrorInternal indicates an unexpected internal error.
	ErrorInternal ErrorCategory = "internal"
)

// VendorError wraps a vendor-call failure with its normalized category. It
// never escapes a provider: each provider converts it into a failed check
// result via its Error() string.
type VendorError struct {
	Category   ErrorCategory
	Provider   string
	Message    string
	Underlying error
}

func (e *VendorError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.Provider, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.Provider, e.Category, e.Message)
}

func (e *VendorError) Unwrap() error {
	return e.Underlying
}

// NewVendorError builds a normalized vendor failure.
func NewVendorError(category ErrorCategory, provider, message string, underlying error) *VendorError {
	return &VendorError{
		Category:   category,
		Provider:   provider,
		Message:    message,
		Underlying: underlying,
	}
}

// Category extracts the normalized category from an error.
func Category(err error) ErrorCategory {
	var ve *VendorError
	if errors.As(err, &ve) {
		return ve.Category
	}
	return ErrorInternal
}

// Sentinel errors for registry resolution.
var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrNoProvider      = errors.New("no provider configured")
)
