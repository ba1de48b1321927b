package service

import (
	"testing"

	"amora/internal/domain"
	"amora/internal/models"
	"amora/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscovery(db *gorm.DB) *DiscoveryService {
	users := repository.NewUserRepository(db)
	matches := repository.NewMatchRepository(db)
	return NewDiscoveryService(users, matches, NewPrivacyService(matches), 500, 50, 18)
}

func publicUser(name string, lat, lng float64, maxKm float64) models.User {
	return models.User{
		Name:                   name,
		IsActive:               true,
		Latitude:               f64(lat),
		Longitude:              f64(lng),
		LocationPrivacy:        domain.PrivacyPublic,
		LocationSharingEnabled: true,
		MaxDistanceKm:          maxKm,
	}
}

func TestFindNearbyUsersBasicScenario(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	// B sits ~5 km north of A; A searches within 10 km.
	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	b := seedUser(t, db, publicUser("b", 40.045, -74.0, 50))

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].User.ID)
	assert.InDelta(t, 5.0, got[0].DistanceKm, 0.05)
	assert.GreaterOrEqual(t, got[0].MatchScore, 0.0)
	assert.LessOrEqual(t, got[0].MatchScore, 100.0)
}

func TestFindNearbyUsersHiddenExcludedRegardlessOfDistance(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	hidden := publicUser("b", 40.001, -74.0, 50)
	hidden.LocationPrivacy = domain.PrivacyHidden
	seedUser(t, db, hidden)

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNearbyUsersExcludesSelfAndRespectsRadius(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	seedUser(t, db, publicUser("near", 40.045, -74.0, 50))  // ~5 km
	seedUser(t, db, publicUser("far", 40.5, -74.0, 50))     // ~55 km

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	for _, n := range got {
		assert.NotEqual(t, a.ID, n.User.ID, "requester must never appear in its own list")
		assert.LessOrEqual(t, n.DistanceKm, 10.0)
	}
}

func TestFindNearbyUsersRadiusOverride(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	seedUser(t, db, publicUser("far", 40.5, -74.0, 50)) // ~55 km

	got, err := svc.FindNearbyUsers(a, 100)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFindNearbyUsersSortedByDistanceDeterministic(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 50))
	seedUser(t, db, publicUser("mid", 40.09, -74.0, 50))
	seedUser(t, db, publicUser("close", 40.02, -74.0, 50))
	// two candidates at the same spot: tie broken by user ID
	tie1 := seedUser(t, db, publicUser("tie1", 40.18, -74.0, 50))
	tie2 := seedUser(t, db, publicUser("tie2", 40.18, -74.0, 50))

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].DistanceKm, got[i-1].DistanceKm, "list must be non-decreasing by distance")
	}
	assert.Equal(t, tie1.ID, got[2].User.ID)
	assert.Equal(t, tie2.ID, got[3].User.ID)
}

func TestFindNearbyUsersHighLatitudeLongitudeOffset(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	// At 60°N a degree of longitude spans only ~55.6 km, so an equator-sized
	// pre-filter box would drop this in-radius candidate.
	a := seedUser(t, db, publicUser("a", 60.0, 0.0, 15))
	b := seedUser(t, db, publicUser("b", 60.0, 0.18, 50)) // ~10 km east

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].User.ID)
	assert.InDelta(t, 10.0, got[0].DistanceKm, 0.1)
}

func TestFindNearbyUsersNoLocationReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, models.User{Name: "a", IsActive: true, LocationSharingEnabled: true, MaxDistanceKm: 10})
	seedUser(t, db, publicUser("b", 40.0, -74.0, 50))

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindNearbyUsersSuppressesBlockedPairs(t *testing.T) {
	db := newTestDB(t)
	matches := repository.NewMatchRepository(db)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	b := seedUser(t, db, publicUser("b", 40.01, -74.0, 50))

	u1, u2 := models.CanonicalPair(a.ID, b.ID)
	require.NoError(t, matches.Create(&models.UserMatch{
		User1ID: u1, User2ID: u2,
		Status: domain.MatchStatusBlocked, ActionUserID: b.ID,
	}))

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	assert.Empty(t, got, "blocked pairs must never surface in candidate search")
}

func TestFindNearbyUsersSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))
	inactive := publicUser("b", 40.01, -74.0, 50)
	inactive.IsActive = false
	seedUser(t, db, inactive)

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNearbyUsersAgeRangePreference(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	seeker := publicUser("a", 40.0, -74.0, 10)
	seeker.AgeRangeMin = 25
	seeker.AgeRangeMax = 35
	seeker.DateOfBirth = dob(30)
	a := seedUser(t, db, seeker)

	inRange := publicUser("in", 40.01, -74.0, 50)
	inRange.DateOfBirth = dob(28)
	wanted := seedUser(t, db, inRange)

	tooYoung := publicUser("young", 40.01, -74.0, 50)
	tooYoung.DateOfBirth = dob(20)
	seedUser(t, db, tooYoung)

	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, wanted.ID, got[0].User.ID)
}

func TestFindNearbyUsersExcludesMinors(t *testing.T) {
	db := newTestDB(t)
	svc := newDiscovery(db)

	a := seedUser(t, db, publicUser("a", 40.0, -74.0, 10))

	minor := publicUser("minor", 40.01, -74.0, 50)
	minor.DateOfBirth = dob(17)
	seedUser(t, db, minor)

	adult := publicUser("adult", 40.01, -74.0, 50)
	adult.DateOfBirth = dob(18)
	wanted := seedUser(t, db, adult)

	// No age range set: the floor still applies.
	got, err := svc.FindNearbyUsers(a, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, wanted.ID, got[0].User.ID)
}
