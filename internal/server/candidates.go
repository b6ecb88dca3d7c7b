package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/betterballot/ballot-api/internal/candidates"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *httpHandler) handleListCandidates(c *gin.Context) {
	profiles, err := h.candidates.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list candidates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *httpHandler) handleGetCandidate(c *gin.Context) {
	candidateID, ok := parseIDParam(c, "Invalid candidate id")
	if !ok {
		return
	}

	profile, err := h.candidates.Get(c.Request.Context(), candidateID)
	if errors.Is(err, candidates.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch candidate", zap.Int64("candidate_id", candidateID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidate"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *httpHandler) handleCreateCandidate(c *gin.Context) {
	var input candidates.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Position) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and position are required"})
		return
	}

	candidateID, err := h.candidates.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create candidate", zap.String("name", input.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": candidateID, "message": "Candidate created successfully"})
}

func (h *httpHandler) handleUpdateCandidate(c *gin.Context) {
	candidateID, ok := parseIDParam(c, "Invalid candidate id")
	if !ok {
		return
	}

	var input candidates.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Position) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and position are required"})
		return
	}

	err := h.candidates.Update(c.Request.Context(), candidateID, input)
	if errors.Is(err, candidates.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update candidate", zap.Int64("candidate_id", candidateID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate updated successfully"})
}

func (h *httpHandler) handleDeleteCandidate(c *gin.Context) {
	candidateID, ok := parseIDParam(c, "Invalid candidate id")
	if !ok {
		return
	}

	if err := h.candidates.Delete(c.Request.Context(), candidateID); err != nil {
		h.logger.Error("failed to delete candidate", zap.Int64("candidate_id", candidateID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete candidate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted successfully"})
}

func parseIDParam(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return 0, false
	}
	return id, true
}
