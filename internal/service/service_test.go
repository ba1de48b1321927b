package service

import (
	"fmt"
	"testing"
	"time"

	"amora/internal/database"
	"amora/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func f64(v float64) *float64 { return &v }

// dob returns a date of birth for someone aged years old today.
func dob(years int) *time.Time {
	d := time.Now().AddDate(-years, 0, -1)
	return &d
}

// seedUser inserts a user and returns it reloaded. Boolean fields with DB
// defaults (is_active, location_sharing_enabled) are forced explicitly so
// tests can seed false values.
func seedUser(t *testing.T, db *gorm.DB, u models.User) *models.User {
	t.Helper()
	if u.Email == "" {
		u.Email = fmt.Sprintf("user-%d-%d@example.com", time.Now().UnixNano(), len(u.Name))
	}
	active := u.IsActive
	sharing := u.LocationSharingEnabled
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", u.ID).
		Updates(map[string]any{"is_active": active, "location_sharing_enabled": sharing}).Error; err != nil {
		t.Fatalf("force flags: %v", err)
	}
	var out models.User
	if err := db.First(&out, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &out
}
