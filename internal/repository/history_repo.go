package repository

import (
	"amora/internal/models"

	"gorm.io/gorm"
)

// HistoryRepository appends and reads the immutable location history log.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(h *models.LocationHistory) error {
	return r.db.Create(h).Error
}

func (r *HistoryRepository) ListByUser(userID uint, limit, offset int) ([]models.LocationHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var entries []models.LocationHistory
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LocationHistory{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
