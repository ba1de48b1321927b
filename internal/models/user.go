package models

import (
	"time"

	"amora/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name        string         `gorm:"size:128" json:"name"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	Gender      string         `gorm:"size:16;index" json:"gender"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Location. Separate nullable lat/lng columns for portability and
	// Haversine queries; both set or both null.
	Latitude           *float64   `gorm:"type:decimal(10,8);index:idx_users_lat_lng" json:"-"`
	Longitude          *float64   `gorm:"type:decimal(11,8);index:idx_users_lat_lng" json:"-"`
	Address            string     `gorm:"size:512" json:"address"`
	City               string     `gorm:"size:128" json:"city"`
	State              string     `gorm:"size:128" json:"state"`
	Country            string     `gorm:"size:128" json:"country"`
	PostalCode         string     `gorm:"size:32" json:"postal_code"`
	LastLocationUpdate *time.Time `json:"last_location_update"`

	// Location privacy.
	LocationPrivacy         string `gorm:"size:16;default:public" json:"location_privacy"`
	LocationSharingEnabled  bool   `gorm:"default:true" json:"location_sharing_enabled"`
	LocationUpdateFrequency string `gorm:"size:16;default:manual" json:"location_update_frequency"`

	// Matching preferences.
	MaxDistanceKm   float64 `gorm:"default:50" json:"max_distance_km"`
	AgeRangeMin     int     `json:"age_range_min"`
	AgeRangeMax     int     `json:"age_range_max"`
	PreferredGender string  `gorm:"size:16" json:"preferred_gender"`
}

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Age returns age in years at t, 0 when date of birth is unknown.
func (u *User) Age(t time.Time) int {
	if u.DateOfBirth == nil {
		return 0
	}
	age := t.Year() - u.DateOfBirth.Year()
	if t.YearDay() < u.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// EffectiveMaxDistanceKm returns the user's search radius, falling back to
// the default when unset.
func (u *User) EffectiveMaxDistanceKm() float64 {
	if u.MaxDistanceKm <= 0 {
		return domain.DefaultMaxDistanceKm
	}
	return u.MaxDistanceKm
}
