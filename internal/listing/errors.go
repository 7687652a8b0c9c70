package listing

import "errors"

// Domain-specific errors for the listing package. Remote-service
// failures never surface through these; read operations degrade to
// empty results instead (see usecase).
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrEmptyID         = errors.New("id is required")
	ErrInvalidPayload  = errors.New("invalid listing payload")
	ErrMutationFailed  = errors.New("listing service rejected the mutation")
)
