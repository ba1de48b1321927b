package service

import (
	"amora/internal/domain"
	"amora/internal/models"
	"amora/internal/repository"
)

// PrivacyService decides whether one user's location may be shown to another.
type PrivacyService struct {
	matches *repository.MatchRepository
}

func NewPrivacyService(matches *repository.MatchRepository) *PrivacyService {
	return &PrivacyService{matches: matches}
}

// CanViewLocation evaluates the visibility decision table in order:
// sharing toggle, then privacy mode. The friends tier always denies: there
// is no friend graph yet, a documented limitation rather than a bug.
func (s *PrivacyService) CanViewLocation(viewer, target *models.User) (bool, error) {
	if !target.LocationSharingEnabled {
		return false, nil
	}
	switch target.LocationPrivacy {
	case domain.PrivacyPublic:
		return true, nil
	case domain.PrivacyFriends:
		return false, nil
	case domain.PrivacyPrivate:
		return s.matches.HasMatched(viewer.ID, target.ID)
	case domain.PrivacyHidden:
		return false, nil
	default:
		return false, nil
	}
}
