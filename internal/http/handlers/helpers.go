package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
)

// currentUserID reads the authenticated user id set by the auth middleware.
// Returns false after writing a 401 when the context has none.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return 0, false
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(userID), true
}

// pathID parses a numeric path parameter. Returns false after writing a 400
// when it is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

func userJSON(u *domain.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"phone":          u.Phone,
		"name":           u.Name,
		"email":          u.Email,
		"avatar_url":     u.AvatarURL,
		"bio":            u.Bio,
		"role":           u.Role,
		"is_active":      u.IsActive,
		"phone_verified": u.PhoneVerified,
		"created_at":     u.CreatedAt,
		"updated_at":     u.UpdatedAt,
	}
}
