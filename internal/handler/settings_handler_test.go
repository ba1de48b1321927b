package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"amora/internal/database"
	"amora/internal/domain"
	"amora/internal/models"
	"amora/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// asUser injects the authenticated user ID the way the auth middleware does.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func settingsRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSettingsHandler(repository.NewUserRepository(db))
	r.PATCH("/me/settings", asUser(userID), h.Update)
	return r
}

func patchSettings(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/me/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSettingsUpdateFrequency(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, db.Create(&user).Error)
	r := settingsRouter(db, user.ID)

	w := patchSettings(t, r, `{"location_update_frequency":"hourly"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, domain.UpdateFrequencyHourly, got.LocationUpdateFrequency)
}

func TestSettingsRejectsUnknownFrequency(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, db.Create(&user).Error)
	r := settingsRouter(db, user.ID)

	w := patchSettings(t, r, `{"location_update_frequency":"sometimes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location_update_frequency")

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.NotEqual(t, "sometimes", got.LocationUpdateFrequency)
}

func TestSettingsRejectsUnknownPrivacyMode(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "a", Email: "a@example.com"}
	require.NoError(t, db.Create(&user).Error)
	r := settingsRouter(db, user.ID)

	w := patchSettings(t, r, `{"location_privacy":"stealth"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
