package controllers

import (
	"net/http"

	"Fivestack/middleware"
	"Fivestack/services/listings"

	"github.com/gin-gonic/gin"
)

// @Summary Own listings dashboard
// @Description Returns all of the caller's listings, newest first, including expired and cancelled ones
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{parties=array,lfg_requests=array}
// @Failure 401 {object} object{error=string}
// @Router /auth/my/listings [get]
// @Security ApiKeyAuth
func MyListings(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		parties, requests, err := svc.OwnListings(c.Request.Context(), ownerID)
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"parties":      parties,
			"lfg_requests": requests,
		})
	}
}
