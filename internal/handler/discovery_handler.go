package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"amora/internal/middleware"
	"amora/internal/repository"
	"amora/internal/service"
	"amora/pkg/proximity"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	discovery *service.DiscoveryService
	users     *repository.UserRepository
}

func NewDiscoveryHandler(discovery *service.DiscoveryService, users *repository.UserRepository) *DiscoveryHandler {
	return &DiscoveryHandler{discovery: discovery, users: users}
}

// Nearby returns the distance-ranked candidate list for the caller.
// Distances are rounded to 0.1 km; exact coordinates appear only for
// candidates the privacy gate already cleared.
func (h *DiscoveryHandler) Nearby(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	radiusKm, _ := strconv.ParseFloat(c.Query("radius_km"), 64)
	results, err := h.discovery.FindNearbyUsers(user, radiusKm)
	if err != nil {
		respondError(c, err)
		return
	}

	effectiveRadius := radiusKm
	if effectiveRadius <= 0 {
		effectiveRadius = user.EffectiveMaxDistanceKm()
	}

	now := time.Now()
	out := make([]gin.H, len(results))
	for i, r := range results {
		out[i] = gin.H{
			"user_id":         r.User.ID,
			"name":            r.User.Name,
			"age":             r.User.Age(now),
			"gender":          r.User.Gender,
			"city":            r.User.City,
			"distance_km":     math.Round(r.DistanceKm*10) / 10,
			"match_score":     math.Round(r.MatchScore*10) / 10,
			"proximity_label": proximity.Label(r.DistanceKm, effectiveRadius),
			"latitude":        r.User.Latitude,
			"longitude":       r.User.Longitude,
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": out, "count": len(out)})
}
