package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/betterballot/ballot-api/internal/districts"
	"github.com/betterballot/ballot-api/internal/elections"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *httpHandler) handleListElections(c *gin.Context) {
	summaries, err := h.elections.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list elections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch elections"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *httpHandler) handleElectionsByZipcode(c *gin.Context) {
	zipcode := c.Param("zipcode")
	summaries, err := h.elections.ListByZipcode(c.Request.Context(), zipcode)
	if err != nil {
		h.logger.Error("failed to list elections by zipcode", zap.String("zipcode", zipcode), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch elections"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *httpHandler) handleCreateElection(c *gin.Context) {
	var input elections.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(input.Office) == "" || strings.TrimSpace(input.District) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Office and district are required"})
		return
	}

	electionID, err := h.elections.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create election", zap.String("office", input.Office), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create election"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": electionID, "message": "Election created successfully"})
}

func (h *httpHandler) handleUpdateElection(c *gin.Context) {
	electionID, ok := parseIDParam(c, "Invalid election id")
	if !ok {
		return
	}

	var input elections.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(input.Office) == "" || strings.TrimSpace(input.District) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Office and district are required"})
		return
	}

	err := h.elections.Update(c.Request.Context(), electionID, input)
	if errors.Is(err, elections.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update election", zap.Int64("election_id", electionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update election"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Election updated successfully"})
}

func (h *httpHandler) handleDeleteElection(c *gin.Context) {
	electionID, ok := parseIDParam(c, "Invalid election id")
	if !ok {
		return
	}

	if err := h.elections.Delete(c.Request.Context(), electionID); err != nil {
		h.logger.Error("failed to delete election", zap.Int64("election_id", electionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete election"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Election deleted successfully"})
}

func (h *httpHandler) handleListDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, districts.All())
}

func (h *httpHandler) handleDistrictsByZipcode(c *gin.Context) {
	c.JSON(http.StatusOK, districts.ByZipcode(c.Param("zipcode")))
}
