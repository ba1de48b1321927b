package repository

import (
	"errors"

	"amora/internal/models"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// GetOrCreate returns the user's permission row, creating it with all
// consents off on first access.
func (r *PermissionRepository) GetOrCreate(userID uint) (*models.LocationPermission, error) {
	var p models.LocationPermission
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = models.LocationPermission{UserID: userID}
		if err := r.db.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepository) Update(p *models.LocationPermission) error {
	return r.db.Save(p).Error
}
