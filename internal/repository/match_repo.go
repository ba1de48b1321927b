package repository

import (
	"errors"

	"amora/internal/domain"
	"amora/internal/models"

	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create persists a new pair row. The caller must have canonicalized the
// pair; the unique index on (user1_id, user2_id) rejects duplicates.
func (r *MatchRepository) Create(m *models.UserMatch) error {
	if !domain.ValidMatchStatus(m.Status) {
		return domain.ErrInvalidStatus
	}
	return r.db.Create(m).Error
}

func (r *MatchRepository) Save(m *models.UserMatch) error {
	if !domain.ValidMatchStatus(m.Status) {
		return domain.ErrInvalidStatus
	}
	return r.db.Save(m).Error
}

func (r *MatchRepository) GetByID(id uint) (*models.UserMatch, error) {
	var m models.UserMatch
	err := r.db.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByPair returns the row for the unordered pair (a, b).
func (r *MatchRepository) GetByPair(a, b uint) (*models.UserMatch, error) {
	u1, u2 := models.CanonicalPair(a, b)
	var m models.UserMatch
	err := r.db.Where("user1_id = ? AND user2_id = ?", u1, u2).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// HasMatched reports whether the pair has reached the matched status.
func (r *MatchRepository) HasMatched(a, b uint) (bool, error) {
	u1, u2 := models.CanonicalPair(a, b)
	var count int64
	err := r.db.Model(&models.UserMatch{}).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Where("status = ?", domain.MatchStatusMatched).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForUser returns every pair row involving userID, newest first.
func (r *MatchRepository) ListForUser(userID uint) ([]models.UserMatch, error) {
	var matches []models.UserMatch
	err := r.db.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ListMatchedForUser returns only pairs that reached the matched status.
func (r *MatchRepository) ListMatchedForUser(userID uint) ([]models.UserMatch, error) {
	var matches []models.UserMatch
	err := r.db.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Where("status = ?", domain.MatchStatusMatched).
		Order("updated_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// BlockedUserIDs returns counterpart IDs of blocked pairs involving userID,
// used to suppress blocked pairs from candidate search.
func (r *MatchRepository) BlockedUserIDs(userID uint) ([]uint, error) {
	var matches []models.UserMatch
	err := r.db.
		Select("user1_id", "user2_id").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Where("status = ?", domain.MatchStatusBlocked).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.OtherSide(userID))
	}
	return ids, nil
}
