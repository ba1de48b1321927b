package handler

import (
	"net/http"

	"amora/internal/middleware"
	"amora/internal/repository"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissions *repository.PermissionRepository
}

func NewPermissionHandler(permissions *repository.PermissionRepository) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

func (h *PermissionHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	p, err := h.permissions.GetOrCreate(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PermissionHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		LocationEnabled           *bool `json:"location_enabled"`
		BackgroundLocationEnabled *bool `json:"background_location_enabled"`
		PreciseLocationEnabled    *bool `json:"precise_location_enabled"`
		LocationServicesConsent   *bool `json:"location_services_consent"`
		ShareLocationOptOut       *bool `json:"share_location_opt_out"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.permissions.GetOrCreate(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.LocationEnabled != nil {
		p.LocationEnabled = *req.LocationEnabled
	}
	if req.BackgroundLocationEnabled != nil {
		p.BackgroundLocationEnabled = *req.BackgroundLocationEnabled
	}
	if req.PreciseLocationEnabled != nil {
		p.PreciseLocationEnabled = *req.PreciseLocationEnabled
	}
	if req.LocationServicesConsent != nil {
		p.LocationServicesConsent = *req.LocationServicesConsent
	}
	if req.ShareLocationOptOut != nil {
		p.ShareLocationOptOut = *req.ShareLocationOptOut
	}
	if err := h.permissions.Update(p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
