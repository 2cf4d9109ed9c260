package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/services"
)

// RunnerCardHandlers handles runner card HTTP requests
type RunnerCardHandlers struct {
	cardSvc *services.RunnerCardService
}

// NewRunnerCardHandlers creates new runner card handlers
func NewRunnerCardHandlers(cardSvc *services.RunnerCardService) *RunnerCardHandlers {
	return &RunnerCardHandlers{cardSvc: cardSvc}
}

// RunnerCardRequest represents runner card create/update data
type RunnerCardRequest struct {
	Location       string `json:"location" binding:"required"`
	Days           string `json:"days" binding:"required"`
	TimeOfDay      string `json:"time_of_day" binding:"required"`
	Pace           string `json:"pace"`
	Note           string `json:"note" binding:"max=1024"`
	ContactVisible bool   `json:"contact_visible"`
}

func cardJSON(card *domain.RunnerCard) gin.H {
	return gin.H{
		"id":              card.ID,
		"user_id":         card.UserID,
		"location":        card.Location,
		"days":            card.Days,
		"time_of_day":     card.TimeOfDay,
		"pace":            card.Pace,
		"note":            card.Note,
		"contact_visible": card.ContactVisible,
		"created_at":      card.CreatedAt,
		"updated_at":      card.UpdatedAt,
	}
}

// List returns posted runner cards, optionally filtered by location
func (h *RunnerCardHandlers) List(c *gin.Context) {
	page, size := pageParams(c)
	cards, total, err := h.cardSvc.List(c.Request.Context(), c.Query("location"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list runner cards"})
		return
	}

	items := make([]gin.H, 0, len(cards))
	for i := range cards {
		items = append(items, cardJSON(&cards[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items, "total": total}})
}

// Get returns a single runner card
func (h *RunnerCardHandlers) Get(c *gin.Context) {
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	card, err := h.cardSvc.Get(c.Request.Context(), cardID)
	if err != nil {
		if err == domain.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Runner card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get runner card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cardJSON(card)})
}

// Create posts a new runner card owned by the caller
func (h *RunnerCardHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RunnerCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := &domain.RunnerCard{
		UserID:         userID,
		Location:       req.Location,
		Days:           req.Days,
		TimeOfDay:      req.TimeOfDay,
		Pace:           req.Pace,
		Note:           req.Note,
		ContactVisible: req.ContactVisible,
	}
	if err := h.cardSvc.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create runner card"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": cardJSON(card)})
}

// Update modifies the caller's own runner card
func (h *RunnerCardHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RunnerCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cardSvc.Update(c.Request.Context(), userID, &domain.RunnerCard{
		ID:             cardID,
		Location:       req.Location,
		Days:           req.Days,
		TimeOfDay:      req.TimeOfDay,
		Pace:           req.Pace,
		Note:           req.Note,
		ContactVisible: req.ContactVisible,
	})
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Runner card not found"})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the card owner"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update runner card"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cardJSON(card)})
}

// Delete removes the caller's own runner card
func (h *RunnerCardHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cardSvc.Delete(c.Request.Context(), userID, cardID); err != nil {
		switch err {
		case domain.ErrCardNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Runner card not found"})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the card owner"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete runner card"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Runner card deleted"}})
}

// ExpressInterest notifies the card owner that the caller wants to run together
func (h *RunnerCardHandlers) ExpressInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cardSvc.ExpressInterest(c.Request.Context(), userID, cardID); err != nil {
		switch err {
		case domain.ErrCardNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Runner card not found"})
		case domain.ErrSelfInterest:
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot express interest in your own card"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record interest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Interest recorded"}})
}
