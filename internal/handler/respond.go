package handler

import (
	"errors"
	"net/http"

	"amora/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses with an actionable
// message; anything unrecognized is a 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
	case errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, domain.ErrSelfAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMatchBlocked):
		c.JSON(http.StatusConflict, gin.H{"error": "match is blocked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
