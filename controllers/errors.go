package controllers

import (
	"errors"
	"log"
	"net/http"

	"Fivestack/services/listings"

	"github.com/gin-gonic/gin"
)

// respondListingError maps service errors onto HTTP responses. Store failures
// are logged here and surfaced as a generic message - internals never reach
// the caller.
func respondListingError(c *gin.Context, err error) {
	var ve *listings.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, listings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, listings.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own listings"})
	default:
		log.Printf("listings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, try again later"})
	}
}
