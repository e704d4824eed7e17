package utils

import "errors"

var (
	ErrDatabaseError        = errors.New("database error")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrPaymentNotConfigured = errors.New("payment provider not configured")
	ErrPaymentProvider      = errors.New("payment provider error")
	ErrMailDelivery         = errors.New("mail delivery failed")
	ErrGalleryUnavailable   = errors.New("gallery unavailable")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAdminNotConfigured   = errors.New("admin access not configured")
)

// ProviderError carries a message that is safe to show to the client
// alongside the wrapped provider failure.
type ProviderError struct {
	Kind          error
	PublicMessage string
	Err           error
}

func (e *ProviderError) Error() string {
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
