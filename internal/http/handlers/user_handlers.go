package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/services"
)

// UserHandlers handles profile HTTP requests
type UserHandlers struct {
	userSvc *services.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc *services.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// UpdateProfileRequest represents profile patch data; absent fields are kept.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
	Bio       *string `json:"bio" binding:"omitempty,max=1024"`
}

// Me returns the authenticated user's profile
func (h *UserHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userJSON(user)})
}

// Get returns a user profile by id. The casbin layer restricts this to
// admins and the user themselves.
func (h *UserHandlers) Get(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userJSON(user)})
}

// UpdateMe patches the authenticated user's profile
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, services.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userJSON(user)})
}
