package server

import (
	"errors"
	"net/http"

	"github.com/betterballot/ballot-api/internal/geocode"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *httpHandler) handleAutocomplete(c *gin.Context) {
	if h.autocomplete == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Autocomplete is not configured"})
		return
	}

	input := c.Query("input")
	if len(input) < geocode.MinInputLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input must be at least 3 characters long"})
		return
	}

	body, err := h.autocomplete.Autocomplete(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, geocode.ErrInputTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Input must be at least 3 characters long"})
			return
		}
		h.logger.Error("autocomplete upstream failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch autocomplete suggestions"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
