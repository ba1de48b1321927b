package handler

import (
	"net/http"
	"strconv"

	"amora/internal/middleware"
	"amora/internal/repository"
	"amora/internal/service"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locations *service.LocationService
	users     *repository.UserRepository
	history   *repository.HistoryRepository
}

func NewLocationHandler(
	locations *service.LocationService,
	users *repository.UserRepository,
	history *repository.HistoryRepository,
) *LocationHandler {
	return &LocationHandler{locations: locations, users: users, history: history}
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Latitude       *float64 `json:"latitude" binding:"required"`
		Longitude      *float64 `json:"longitude" binding:"required"`
		AccuracyMeters *float64 `json:"accuracy_meters"`
		Source         string   `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.locations.UpdateLocation(c.Request.Context(), userID, service.LocationUpdate{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
		Source:         req.Source,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latitude":             user.Latitude,
		"longitude":            user.Longitude,
		"address":              user.Address,
		"city":                 user.City,
		"last_location_update": user.LastLocationUpdate,
	})
}

// UpdateAddress geocodes a manual address and stores the result.
func (h *LocationHandler) UpdateAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.locations.UpdateLocationByAddress(c.Request.Context(), userID, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latitude":  user.Latitude,
		"longitude": user.Longitude,
		"address":   user.Address,
	})
}

func (h *LocationHandler) GetMyLocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !user.HasLocation() {
		c.JSON(http.StatusOK, gin.H{"latitude": nil, "longitude": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latitude":                  user.Latitude,
		"longitude":                 user.Longitude,
		"address":                   user.Address,
		"city":                      user.City,
		"state":                     user.State,
		"country":                   user.Country,
		"postal_code":               user.PostalCode,
		"location_privacy":          user.LocationPrivacy,
		"location_sharing_enabled":  user.LocationSharingEnabled,
		"location_update_frequency": user.LocationUpdateFrequency,
		"last_location_update":      user.LastLocationUpdate,
	})
}

func (h *LocationHandler) GetHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.history.ListByUser(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := h.history.CountByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}
