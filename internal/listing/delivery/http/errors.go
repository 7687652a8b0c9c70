package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"property-listing-service/internal/listing"
	"property-listing-service/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		response.NotFound(c, "listing not found")
	case errors.Is(err, listing.ErrEmptyID), errors.Is(err, listing.ErrInvalidPayload):
		response.Error(c, err, nil)
	default:
		// ErrMutationFailed and anything unexpected: hide details.
		response.InternalError(c, err)
	}
}
