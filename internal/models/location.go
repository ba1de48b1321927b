package models

import (
	"time"
)

// LocationHistory is an append-only log of location updates. Rows are never
// mutated or deleted by normal flow.
type LocationHistory struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	UserID         uint     `gorm:"not null;index" json:"user_id"`
	Latitude       float64  `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude      float64  `gorm:"type:decimal(11,8);not null" json:"longitude"`
	AccuracyMeters *float64 `gorm:"type:decimal(8,2)" json:"accuracy_meters"`
	Address        string   `gorm:"size:512" json:"address"`
	City           string   `gorm:"size:128" json:"city"`
	State          string   `gorm:"size:128" json:"state"`
	Country        string   `gorm:"size:128" json:"country"`
	PostalCode     string   `gorm:"size:32" json:"postal_code"`
	// Source of the fix: gps, network, manual or ip.
	Source    string    `gorm:"size:16;not null;default:gps" json:"source"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (LocationHistory) TableName() string {
	return "location_history"
}
