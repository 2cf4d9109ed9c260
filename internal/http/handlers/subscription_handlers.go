package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/services"
)

// SubscriptionHandlers handles subscription HTTP requests
type SubscriptionHandlers struct {
	subSvc *services.SubscriptionService
}

// NewSubscriptionHandlers creates new subscription handlers
func NewSubscriptionHandlers(subSvc *services.SubscriptionService) *SubscriptionHandlers {
	return &SubscriptionHandlers{subSvc: subSvc}
}

// SetSubscriptionRequest selects the caller's plan
type SetSubscriptionRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free premium"`
}

func subscriptionJSON(sub *domain.Subscription) gin.H {
	return gin.H{
		"id":         sub.ID,
		"user_id":    sub.UserID,
		"plan":       sub.Plan,
		"status":     sub.Status,
		"expires_at": sub.ExpiresAt,
		"created_at": sub.CreatedAt,
		"updated_at": sub.UpdatedAt,
	}
}

// Mine returns the caller's subscription
func (h *SubscriptionHandlers) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := h.subSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrSubscriptionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subscriptionJSON(sub)})
}

// SetMine creates or replaces the caller's subscription
func (h *SubscriptionHandlers) SetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SetSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subSvc.Set(c.Request.Context(), userID, req.Plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subscriptionJSON(sub)})
}
