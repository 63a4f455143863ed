package controllers

import (
	"net/http"

	game_constants "Fivestack/constants/game"
	"Fivestack/middleware"
	"Fivestack/services/listings"
	"Fivestack/services/realtime"
	"Fivestack/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Post an LFG request
// @Description Creates a looking-for-group request; it stays visible for an hour
// @Tags lfg
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param input body listings.LFGInput true "LFG fields"
// @Success 201 {object} object{request=object,owner=object}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 429 {object} object{error=string}
// @Router /auth/lfg [post]
// @Security ApiKeyAuth
func CreateLFG(svc *listings.Service, feed *realtime.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var input listings.LFGInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request, err := svc.CreateLFG(c.Request.Context(), ownerID, input)
		if err != nil {
			respondListingError(c, err)
			return
		}

		owner, err := svc.Owner(c.Request.Context(), ownerID)
		if err != nil {
			respondListingError(c, err)
			return
		}

		feed.ListingCreated(game_constants.KindLFG, request)

		c.JSON(http.StatusCreated, gin.H{"request": request, "owner": owner})
	}
}

// @Summary Browse LFG requests
// @Description Lists visible LFG requests with optional filters, sorting and pagination
// @Tags lfg
// @Produce json
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Page size, 1-50"
// @Param rank query string false "Exact rank filter"
// @Param server query string false "Exact server filter"
// @Param playstyle query string false "Comma-separated playstyles, any may match"
// @Param tags query string false "Comma-separated tags, all must be present"
// @Param sort_by query string false "newest | oldest | mostViewed"
// @Success 200 {object} object{items=array,pagination=object}
// @Failure 400 {object} object{error=string}
// @Router /lfg [get]
func BrowseLFG(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := listings.Criteria{
			Rank:      c.Query("rank"),
			Server:    c.Query("server"),
			Playstyle: splitList(c.Query("playstyle")),
			Tags:      splitList(c.Query("tags")),
		}
		pg := listings.Page{Page: utils.GetPage(c), PageSize: utils.GetPageSize(c, 12)}

		items, pagination, err := svc.BrowseLFG(c.Request.Context(), criteria, c.DefaultQuery("sort_by", listings.SortNewest), pg)
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "pagination": pagination})
	}
}

// @Summary LFG request detail
// @Description Returns one LFG request and counts the view
// @Tags lfg
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} object{request=object,owner=object}
// @Failure 404 {object} object{error=string}
// @Router /lfg/{id} [get]
func GetLFG(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		request, err := svc.GetLFG(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"request": request, "owner": request.Owner.Summary()})
	}
}

// @Summary Delete an LFG request
// @Description Cancels an LFG request; only the owner may do this
// @Tags lfg
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Listing id"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/lfg/{id} [delete]
// @Security ApiKeyAuth
func DeleteLFG(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		err := svc.DeleteListing(c.Request.Context(), game_constants.KindLFG, c.Param("id"), requesterID)
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
	}
}
