package service

import (
	"errors"
	"time"

	"amora/internal/domain"
	"amora/internal/models"
	"amora/internal/repository"
	"amora/pkg/geo"
	"amora/pkg/scoring"

	"github.com/rs/zerolog"
)

// MatchService runs the pairwise match state machine. Pairs are stored
// canonically (one row per unordered pair); reciprocity is detected on
// write: a like landing on a row the counterpart already liked promotes the
// pair to matched.
type MatchService struct {
	users   *repository.UserRepository
	matches *repository.MatchRepository
	log     zerolog.Logger
}

func NewMatchService(users *repository.UserRepository, matches *repository.MatchRepository, log zerolog.Logger) *MatchService {
	return &MatchService{users: users, matches: matches, log: log}
}

func (s *MatchService) Like(actorID, otherID uint) (*models.UserMatch, error) {
	return s.act(actorID, otherID, domain.MatchStatusLiked)
}

func (s *MatchService) Dislike(actorID, otherID uint) (*models.UserMatch, error) {
	return s.act(actorID, otherID, domain.MatchStatusDisliked)
}

func (s *MatchService) Block(actorID, otherID uint) (*models.UserMatch, error) {
	return s.act(actorID, otherID, domain.MatchStatusBlocked)
}

// SetStatus applies an arbitrary status transition, validating the value
// before anything is persisted.
func (s *MatchService) SetStatus(actorID, otherID uint, status string) (*models.UserMatch, error) {
	if !domain.ValidMatchStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.act(actorID, otherID, status)
}

func (s *MatchService) act(actorID, otherID uint, status string) (*models.UserMatch, error) {
	if !domain.ValidMatchStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if actorID == otherID {
		return nil, domain.ErrSelfAction
	}

	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	other, err := s.users.GetByID(otherID)
	if err != nil {
		return nil, err
	}

	m, err := s.matches.GetByPair(actorID, otherID)
	if errors.Is(err, domain.ErrNotFound) {
		return s.createPair(actor, other, status)
	}
	if err != nil {
		return nil, err
	}
	return s.transition(m, actorID, status)
}

// createPair writes the first row for a pair, snapshotting distance and
// score at evaluation time.
func (s *MatchService) createPair(actor, other *models.User, status string) (*models.UserMatch, error) {
	now := time.Now()
	dist := geo.DistanceKm(actor.Latitude, actor.Longitude, other.Latitude, other.Longitude)
	u1, u2 := models.CanonicalPair(actor.ID, other.ID)
	m := &models.UserMatch{
		User1ID:      u1,
		User2ID:      u2,
		DistanceKm:   dist,
		MatchScore:   scoring.MatchScore(scoringProfile(actor, now), scoringProfile(other, now), dist),
		Status:       status,
		ActionUserID: actor.ID,
	}
	if err := s.matches.Create(m); err != nil {
		// Unique index on the canonical pair: on a concurrent first action
		// the other writer won. Re-read and transition instead.
		existing, getErr := s.matches.GetByPair(actor.ID, other.ID)
		if getErr != nil {
			return nil, err
		}
		s.log.Debug().Uint("user1", u1).Uint("user2", u2).Msg("pair row already created concurrently")
		return s.transition(existing, actor.ID, status)
	}
	return m, nil
}

// transition applies a status change to an existing pair row. Blocked is
// terminal; a reciprocal like promotes to matched.
func (s *MatchService) transition(m *models.UserMatch, actorID uint, status string) (*models.UserMatch, error) {
	if m.Status == domain.MatchStatusBlocked {
		return nil, domain.ErrMatchBlocked
	}

	switch status {
	case domain.MatchStatusLiked:
		switch {
		case m.Status == domain.MatchStatusMatched:
			// already matched; liking again changes nothing
			return m, nil
		case m.Status == domain.MatchStatusLiked && m.ActionUserID != actorID:
			m.Status = domain.MatchStatusMatched
			s.log.Info().Uint("user1", m.User1ID).Uint("user2", m.User2ID).Msg("reciprocal like, pair matched")
		default:
			m.Status = domain.MatchStatusLiked
		}
	default:
		m.Status = status
	}
	m.ActionUserID = actorID

	if err := s.matches.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}
