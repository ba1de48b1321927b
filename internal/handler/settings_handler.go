package handler

import (
	"net/http"

	"amora/internal/domain"
	"amora/internal/middleware"
	"amora/internal/repository"

	"github.com/gin-gonic/gin"
)

// SettingsHandler mutates the caller's own privacy and matching preferences.
type SettingsHandler struct {
	users *repository.UserRepository
}

func NewSettingsHandler(users *repository.UserRepository) *SettingsHandler {
	return &SettingsHandler{users: users}
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		LocationPrivacy         *string  `json:"location_privacy"`
		LocationSharingEnabled  *bool    `json:"location_sharing_enabled"`
		LocationUpdateFrequency *string  `json:"location_update_frequency"`
		MaxDistanceKm           *float64 `json:"max_distance_km"`
		AgeRangeMin             *int     `json:"age_range_min"`
		AgeRangeMax             *int     `json:"age_range_max"`
		PreferredGender         *string  `json:"preferred_gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.LocationPrivacy != nil {
		if !domain.ValidPrivacyMode(*req.LocationPrivacy) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_privacy value"})
			return
		}
		user.LocationPrivacy = *req.LocationPrivacy
	}
	if req.LocationSharingEnabled != nil {
		user.LocationSharingEnabled = *req.LocationSharingEnabled
	}
	if req.LocationUpdateFrequency != nil {
		if !domain.ValidUpdateFrequency(*req.LocationUpdateFrequency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_update_frequency value"})
			return
		}
		user.LocationUpdateFrequency = *req.LocationUpdateFrequency
	}
	if req.MaxDistanceKm != nil && *req.MaxDistanceKm > 0 {
		user.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.AgeRangeMin != nil {
		user.AgeRangeMin = *req.AgeRangeMin
	}
	if req.AgeRangeMax != nil {
		user.AgeRangeMax = *req.AgeRangeMax
	}
	if req.PreferredGender != nil {
		user.PreferredGender = *req.PreferredGender
	}
	if err := h.users.Update(user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"location_privacy":          user.LocationPrivacy,
		"location_sharing_enabled":  user.LocationSharingEnabled,
		"location_update_frequency": user.LocationUpdateFrequency,
		"max_distance_km":           user.MaxDistanceKm,
		"age_range_min":             user.AgeRangeMin,
		"age_range_max":             user.AgeRangeMax,
		"preferred_gender":          user.PreferredGender,
	})
}
