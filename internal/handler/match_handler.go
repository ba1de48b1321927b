package handler

import (
	"net/http"
	"strconv"

	"amora/internal/middleware"
	"amora/internal/models"
	"amora/internal/repository"
	"amora/internal/service"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matches   *service.MatchService
	matchRepo *repository.MatchRepository
}

func NewMatchHandler(matches *service.MatchService, matchRepo *repository.MatchRepository) *MatchHandler {
	return &MatchHandler{matches: matches, matchRepo: matchRepo}
}

func (h *MatchHandler) Like(c *gin.Context) {
	h.act(c, h.matches.Like)
}

func (h *MatchHandler) Dislike(c *gin.Context) {
	h.act(c, h.matches.Dislike)
}

func (h *MatchHandler) Block(c *gin.Context) {
	h.act(c, h.matches.Block)
}

func (h *MatchHandler) act(c *gin.Context, action func(actorID, otherID uint) (*models.UserMatch, error)) {
	userID := middleware.GetUserID(c)
	otherID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if otherID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	m, err := action(userID, uint(otherID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matchPayload(userID, m))
}

// ListMatches returns only pairs that reached the matched status.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID := middleware.GetUserID(c)
	matches, err := h.matchRepo.ListMatchedForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": payloads(userID, matches)})
}

// ListInteractions returns every pair row involving the caller.
func (h *MatchHandler) ListInteractions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	matches, err := h.matchRepo.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": payloads(userID, matches)})
}

func payloads(userID uint, matches []models.UserMatch) []gin.H {
	out := make([]gin.H, len(matches))
	for i := range matches {
		out[i] = matchPayload(userID, &matches[i])
	}
	return out
}

func matchPayload(userID uint, m *models.UserMatch) gin.H {
	return gin.H{
		"id":          m.ID,
		"user_id":     m.OtherSide(userID),
		"status":      m.Status,
		"distance_km": m.DistanceKm,
		"match_score": m.MatchScore,
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
	}
}
