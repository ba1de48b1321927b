package models

import (
	"time"

	"gorm.io/gorm"
)

// UserMatch is the single row for an unordered user pair. The pair is stored
// canonically with User1ID < User2ID and a unique index on the ordered
// columns, so mirrored duplicate rows cannot exist. ActionUserID records
// whose action produced the current status; a like by the other side of a
// liked row is a reciprocal like and promotes the pair to matched.
type UserMatch struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	User1ID uint `gorm:"not null;uniqueIndex:idx_match_pair,priority:1" json:"user1_id"`
	User2ID uint `gorm:"not null;uniqueIndex:idx_match_pair,priority:2" json:"user2_id"`

	// Distance and score snapshotted when the pair was first evaluated,
	// not recomputed on later transitions.
	DistanceKm *float64 `gorm:"type:decimal(8,3)" json:"distance_km"`
	MatchScore float64  `gorm:"type:decimal(5,2)" json:"match_score"`

	Status       string `gorm:"size:16;not null;default:pending;index" json:"status"`
	ActionUserID uint   `gorm:"not null" json:"action_user_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User1 User `gorm:"foreignKey:User1ID" json:"-"`
	User2 User `gorm:"foreignKey:User2ID" json:"-"`
}

func (UserMatch) TableName() string {
	return "user_matches"
}

// CanonicalPair orders two user IDs for storage, lower ID first.
func CanonicalPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// Involves reports whether userID is one side of the pair.
func (m *UserMatch) Involves(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherSide returns the counterpart of userID in the pair.
func (m *UserMatch) OtherSide(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
