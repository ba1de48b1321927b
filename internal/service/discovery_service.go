package service

import (
	"sort"
	"time"

	"amora/internal/models"
	"amora/internal/repository"
	"amora/pkg/geo"
	"amora/pkg/scoring"
)

// NearbyUser is one ranked candidate from a nearby search.
type NearbyUser struct {
	User       models.User
	DistanceKm float64
	MatchScore float64
}

// DiscoveryService produces the distance-ranked candidate list. The scan is
// O(n) over location-bearing users inside a bounding box; fine at the target
// scale, and a spatial index could replace the listing query without
// changing the contract.
type DiscoveryService struct {
	users       *repository.UserRepository
	matches     *repository.MatchRepository
	privacy     *PrivacyService
	maxRadiusKm float64
	limit       int
	minAge      int
}

func NewDiscoveryService(
	users *repository.UserRepository,
	matches *repository.MatchRepository,
	privacy *PrivacyService,
	maxRadiusKm float64,
	limit int,
	minAge int,
) *DiscoveryService {
	if maxRadiusKm <= 0 {
		maxRadiusKm = 500
	}
	if limit <= 0 {
		limit = 50
	}
	if minAge <= 0 {
		minAge = 18
	}
	return &DiscoveryService{
		users:       users,
		matches:     matches,
		privacy:     privacy,
		maxRadiusKm: maxRadiusKm,
		limit:       limit,
		minAge:      minAge,
	}
}

// FindNearbyUsers returns candidates within the effective radius, visible to
// the requester, sorted ascending by distance with user ID as tiebreak.
// A requester without a location gets an empty list, not an error.
// overrideKm <= 0 means "use the requester's preference".
func (s *DiscoveryService) FindNearbyUsers(user *models.User, overrideKm float64) ([]NearbyUser, error) {
	if !user.HasLocation() {
		return []NearbyUser{}, nil
	}

	radius := overrideKm
	if radius <= 0 {
		radius = user.EffectiveMaxDistanceKm()
	}
	if radius > s.maxRadiusKm {
		radius = s.maxRadiusKm
	}

	latDelta, lngDelta := geo.BoundingBoxDeltas(*user.Latitude, radius)
	candidates, err := s.users.ListActiveWithLocation(
		user.ID,
		*user.Latitude-latDelta, *user.Latitude+latDelta,
		*user.Longitude-lngDelta, *user.Longitude+lngDelta,
	)
	if err != nil {
		return nil, err
	}

	blockedIDs, err := s.matches.BlockedUserIDs(user.ID)
	if err != nil {
		return nil, err
	}
	blocked := make(map[uint]bool, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = true
	}

	now := time.Now()
	results := make([]NearbyUser, 0, len(candidates))
	for i := range candidates {
		cand := &candidates[i]
		if blocked[cand.ID] {
			continue
		}
		dist := geo.DistanceKm(user.Latitude, user.Longitude, cand.Latitude, cand.Longitude)
		if dist == nil || *dist > radius {
			continue
		}
		// Known minors never surface, regardless of the requester's range.
		if age := cand.Age(now); age > 0 && age < s.minAge {
			continue
		}
		if !s.withinAgeRange(user, cand, now) {
			continue
		}
		visible, err := s.privacy.CanViewLocation(user, cand)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}
		results = append(results, NearbyUser{
			User:       *cand,
			DistanceKm: *dist,
			MatchScore: scoring.MatchScore(scoringProfile(user, now), scoringProfile(cand, now), dist),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].User.ID < results[j].User.ID
	})
	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results, nil
}

// withinAgeRange applies the requester's age range preference when set.
// A zero bound leaves that side unconstrained; an unknown candidate age
// passes only when no range is set.
func (s *DiscoveryService) withinAgeRange(user, cand *models.User, now time.Time) bool {
	if user.AgeRangeMin <= 0 && user.AgeRangeMax <= 0 {
		return true
	}
	age := cand.Age(now)
	if age <= 0 {
		return false
	}
	if user.AgeRangeMin > 0 && age < user.AgeRangeMin {
		return false
	}
	if user.AgeRangeMax > 0 && age > user.AgeRangeMax {
		return false
	}
	return true
}

func scoringProfile(u *models.User, now time.Time) scoring.Profile {
	return scoring.Profile{
		Age:             u.Age(now),
		Gender:          u.Gender,
		PreferredGender: u.PreferredGender,
		MaxDistanceKm:   u.EffectiveMaxDistanceKm(),
	}
}
