package resources

import "errors"

var (
	// ErrMissingResourceURI is returned when a request carries no resource_uri.
	ErrMissingResourceURI = errors.New("resource_uri is required")
	// ErrInvalidResourceURI is returned when resource_uri is present but not a string.
	ErrInvalidResourceURI = errors.New("resource_uri must be a string")
	// ErrUnsupportedContent is returned when a read yields a content kind the
	// adapter does not know how to classify.
	ErrUnsupportedContent = errors.New("unsupported resource content")
)
