package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"Fivestack/middleware"
	models "Fivestack/models/postgres"
	"Fivestack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	RiotID   string `json:"riot_id" binding:"required"`
	Bio      string `json:"bio" binding:"max=500"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Riot id format: game name plus "#" plus a 2-5 character tagline
var riotIDRegexp = regexp.MustCompile(`^.{3,16}#[A-Za-z0-9]{2,5}$`)

// @Summary Register a new account
// @Description Creates a user and returns a bearer token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Registration fields"
// @Success 201 {object} object{user=object,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /signup [post]
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !riotIDRegexp.MatchString(input.RiotID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Riot ID must look like Name#Tag"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		// Check if user already exists
		var existing models.User
		if result := db.Where("email = ?", email).First(&existing); result.RowsAffected > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}

		user := models.User{
			Email:  email,
			RiotID: input.RiotID,
			Bio:    input.Bio,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if result := db.Create(&user); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user": gin.H{
				"id":      user.ID,
				"email":   user.Email,
				"riot_id": user.RiotID,
			},
			"token": token,
		})
	}
}

// @Summary Log in
// @Description Verifies credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Credentials"
// @Success 200 {object} object{user=object,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user); result.Error != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := user.ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":      user.ID,
				"email":   user.Email,
				"riot_id": user.RiotID,
			},
			"token": token,
		})
	}
}

// @Summary Current account info
// @Description Returns the authenticated user's own profile
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":       user.ID,
				"email":    user.Email,
				"riot_id":  user.RiotID,
				"bio":      user.Bio,
				"verified": user.Verified,
			},
		})
	}
}
