package controllers

import (
	"net/http"
	"strings"

	game_constants "Fivestack/constants/game"
	"Fivestack/middleware"
	"Fivestack/services/listings"
	"Fivestack/services/realtime"
	"Fivestack/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Post a party invitation
// @Description Creates a party invitation with a join code; it stays visible until its lifetime runs out
// @Tags parties
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param input body listings.PartyInput true "Party fields"
// @Success 201 {object} object{party=object,owner=object}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 429 {object} object{error=string}
// @Router /auth/parties [post]
// @Security ApiKeyAuth
func CreateParty(svc *listings.Service, feed *realtime.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var input listings.PartyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		party, err := svc.CreateParty(c.Request.Context(), ownerID, input)
		if err != nil {
			respondListingError(c, err)
			return
		}

		owner, err := svc.Owner(c.Request.Context(), ownerID)
		if err != nil {
			respondListingError(c, err)
			return
		}

		feed.ListingCreated(game_constants.KindParty, party)

		c.JSON(http.StatusCreated, gin.H{"party": party, "owner": owner})
	}
}

// @Summary Browse party invitations
// @Description Lists visible party invitations with optional filters, sorting and pagination
// @Tags parties
// @Produce json
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Page size, 1-50"
// @Param rank query string false "Exact rank filter"
// @Param server query string false "Exact server filter"
// @Param mode query string false "Exact mode filter"
// @Param size query string false "Exact party size filter"
// @Param tags query string false "Comma-separated tags, all must be present"
// @Param sort_by query string false "newest | oldest | mostViewed"
// @Success 200 {object} object{items=array,pagination=object}
// @Failure 400 {object} object{error=string}
// @Router /parties [get]
func BrowseParties(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := listings.Criteria{
			Rank:   c.Query("rank"),
			Server: c.Query("server"),
			Mode:   c.Query("mode"),
			Size:   c.Query("size"),
			Tags:   splitList(c.Query("tags")),
		}
		pg := listings.Page{Page: utils.GetPage(c), PageSize: utils.GetPageSize(c, 12)}

		items, pagination, err := svc.BrowseParties(c.Request.Context(), criteria, c.DefaultQuery("sort_by", listings.SortNewest), pg)
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "pagination": pagination})
	}
}

// @Summary Party invitation detail
// @Description Returns one party invitation and counts the view
// @Tags parties
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} object{party=object,owner=object}
// @Failure 404 {object} object{error=string}
// @Router /parties/{id} [get]
func GetParty(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		party, err := svc.GetParty(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"party": party, "owner": party.Owner.Summary()})
	}
}

// @Summary Delete a party invitation
// @Description Cancels a party invitation; only the owner may do this
// @Tags parties
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Listing id"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/parties/{id} [delete]
// @Security ApiKeyAuth
func DeleteParty(svc *listings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		err := svc.DeleteListing(c.Request.Context(), game_constants.KindParty, c.Param("id"), requesterID)
		if err != nil {
			respondListingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
	}
}

// splitList parses a comma-separated query value into a string set.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
