package repository

import (
	"errors"

	"amora/internal/domain"
	"amora/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// ListActiveWithLocation returns active users holding both coordinates
// inside the bounding box, excluding excludeID. The box is a coarse SQL
// pre-filter; callers apply the exact Haversine cut afterwards.
func (r *UserRepository) ListActiveWithLocation(excludeID uint, latMin, latMax, lngMin, lngMax float64) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("is_active = ?", true).
		Where("id <> ?", excludeID).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", latMin, latMax).
		Where("longitude BETWEEN ? AND ?", lngMin, lngMax).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
