package users

import (
	"errors"
	"net/http"

	"github.com/QASIM-LOKHANDWALA/Train.ai/db"
	"github.com/QASIM-LOKHANDWALA/Train.ai/models"
	"github.com/QASIM-LOKHANDWALA/Train.ai/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get the caller's profile
// @Description Fetch the authenticated user's document
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "user: user document"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /user/profile [get]
func Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error fetching profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile fetched successfully.",
		"user":    user,
	})
}

// @Summary Upgrade the caller to premium
// @Description Set the premium_user flag on the authenticated user's document
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Premium status updated"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /user/set-premium [get]
func SetPremium(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error fetching user for premium update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Model(&user).Update("premium_user", true).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating premium status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Premium status updated.",
	})
}
