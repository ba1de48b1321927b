package models

import (
	"time"

	"gorm.io/gorm"
)

// LocationPermission holds a user's device-level location consents, one row
// per user, created lazily with zero values on first read.
type LocationPermission struct {
	ID                        uint           `gorm:"primaryKey" json:"id"`
	UserID                    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	LocationEnabled           bool           `json:"location_enabled"`
	BackgroundLocationEnabled bool           `json:"background_location_enabled"`
	PreciseLocationEnabled    bool           `json:"precise_location_enabled"`
	LocationServicesConsent   bool           `json:"location_services_consent"`
	ShareLocationOptOut       bool           `json:"share_location_opt_out"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
	DeletedAt                 gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (LocationPermission) TableName() string {
	return "location_permissions"
}
