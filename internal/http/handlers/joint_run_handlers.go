package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/services"
)

// JointRunHandlers handles joint run HTTP requests
type JointRunHandlers struct {
	runSvc *services.JointRunService
}

// NewJointRunHandlers creates new joint run handlers
func NewJointRunHandlers(runSvc *services.JointRunService) *JointRunHandlers {
	return &JointRunHandlers{runSvc: runSvc}
}

// JointRunRequest represents joint run create/update data
type JointRunRequest struct {
	Title           string    `json:"title" binding:"required,max=256"`
	Location        string    `json:"location" binding:"required"`
	Description     string    `json:"description" binding:"max=2048"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	MaxParticipants int       `json:"max_participants" binding:"min=0"`
}

// JoinRequest carries an optional initial participation status
type JoinRequest struct {
	Status string `json:"status"`
}

// ParticipantStatusRequest updates the caller's participation status
type ParticipantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func runJSON(run *domain.JointRun) gin.H {
	return gin.H{
		"id":               run.ID,
		"creator_id":       run.CreatorID,
		"title":            run.Title,
		"location":         run.Location,
		"description":      run.Description,
		"scheduled_at":     run.ScheduledAt,
		"max_participants": run.MaxParticipants,
		"created_at":       run.CreatedAt,
		"updated_at":       run.UpdatedAt,
	}
}

func participantJSON(p *domain.JointRunParticipant) gin.H {
	return gin.H{
		"id":           p.ID,
		"joint_run_id": p.JointRunID,
		"user_id":      p.UserID,
		"status":       p.Status,
		"created_at":   p.CreatedAt,
		"updated_at":   p.UpdatedAt,
	}
}

// List returns upcoming joint runs
func (h *JointRunHandlers) List(c *gin.Context) {
	page, size := pageParams(c)
	runs, total, err := h.runSvc.List(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list joint runs"})
		return
	}

	items := make([]gin.H, 0, len(runs))
	for i := range runs {
		items = append(items, runJSON(&runs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items, "total": total}})
}

// Get returns a single joint run
func (h *JointRunHandlers) Get(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	run, err := h.runSvc.Get(c.Request.Context(), runID)
	if err != nil {
		if err == domain.ErrRunNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get joint run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": runJSON(run)})
}

// Create organizes a new joint run with the caller as creator
func (h *JointRunHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req JointRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run := &domain.JointRun{
		CreatorID:       userID,
		Title:           req.Title,
		Location:        req.Location,
		Description:     req.Description,
		ScheduledAt:     req.ScheduledAt,
		MaxParticipants: req.MaxParticipants,
	}
	if err := h.runSvc.Create(c.Request.Context(), run); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create joint run"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": runJSON(run)})
}

// Update modifies a joint run owned by the caller
func (h *JointRunHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JointRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.runSvc.Update(c.Request.Context(), userID, &domain.JointRun{
		ID:              runID,
		Title:           req.Title,
		Location:        req.Location,
		Description:     req.Description,
		ScheduledAt:     req.ScheduledAt,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		switch err {
		case domain.ErrRunNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the run creator"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update joint run"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": runJSON(run)})
}

// Delete removes a joint run owned by the caller, along with its participants
func (h *JointRunHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.runSvc.Delete(c.Request.Context(), userID, runID); err != nil {
		switch err {
		case domain.ErrRunNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the run creator"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete joint run"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Joint run deleted"}})
}

// Join registers the caller as a participant in a run
func (h *JointRunHandlers) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	// Body is optional; without one the service defaults the status.
	var req JoinRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	participant, err := h.runSvc.Join(c.Request.Context(), userID, runID, req.Status)
	if err != nil {
		switch err {
		case domain.ErrRunNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
		case domain.ErrAlreadyJoined:
			c.JSON(http.StatusConflict, gin.H{"error": "Already joined this run"})
		case domain.ErrRunFull:
			c.JSON(http.StatusConflict, gin.H{"error": "Joint run is full"})
		case domain.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participation status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join run"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": participantJSON(participant)})
}

// Leave withdraws the caller from a run
func (h *JointRunHandlers) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.runSvc.Leave(c.Request.Context(), userID, runID); err != nil {
		if err == domain.ErrParticipantNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not a participant of this run"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Left the run"}})
}

// Participants lists everyone registered for a run
func (h *JointRunHandlers) Participants(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	participants, err := h.runSvc.Participants(c.Request.Context(), runID)
	if err != nil {
		if err == domain.ErrRunNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list participants"})
		return
	}

	items := make([]gin.H, 0, len(participants))
	for i := range participants {
		items = append(items, participantJSON(&participants[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items, "total": len(items)}})
}

// UpdateMyStatus changes the caller's own participation status
func (h *JointRunHandlers) UpdateMyStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ParticipantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.runSvc.UpdateStatus(c.Request.Context(), userID, runID, req.Status)
	if err != nil {
		switch err {
		case domain.ErrRunNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Joint run not found"})
		case domain.ErrParticipantNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Not a participant of this run"})
		case domain.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participation status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": participantJSON(participant)})
}
