package service

import (
	"context"
	"fmt"
	"time"

	"amora/internal/domain"
	"amora/internal/models"
	"amora/internal/repository"
	"amora/pkg/geo"
	"amora/pkg/geocode"

	"github.com/rs/zerolog"
)

// LocationUpdate is a coordinate fix reported for a user.
type LocationUpdate struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	Source         string
}

// LocationService persists location updates: validate, reverse geocode,
// write the user's location fields and append a history entry. Geocoding
// failure never blocks the update; the address is simply unknown.
type LocationService struct {
	users    *repository.UserRepository
	history  *repository.HistoryRepository
	geocoder *geocode.Client
	log      zerolog.Logger
}

func NewLocationService(
	users *repository.UserRepository,
	history *repository.HistoryRepository,
	geocoder *geocode.Client,
	log zerolog.Logger,
) *LocationService {
	return &LocationService{users: users, history: history, geocoder: geocoder, log: log}
}

// UpdateLocation applies a coordinate fix for userID.
func (s *LocationService) UpdateLocation(ctx context.Context, userID uint, in LocationUpdate) (*models.User, error) {
	if err := geo.ValidateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCoordinates, err)
	}
	if in.Source == "" {
		in.Source = domain.LocationSourceGPS
	}
	if !domain.ValidLocationSource(in.Source) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSource, in.Source)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	addr := s.geocoder.ReverseGeocode(ctx, in.Latitude, in.Longitude)
	if addr == nil {
		s.log.Warn().Uint("user_id", userID).Msg("reverse geocode unavailable, storing coordinates without address")
		addr = &geocode.Address{}
	}

	now := time.Now()
	user.Latitude = &in.Latitude
	user.Longitude = &in.Longitude
	user.Address = addr.Address
	user.City = addr.City
	user.State = addr.State
	user.Country = addr.Country
	user.PostalCode = addr.PostalCode
	user.LastLocationUpdate = &now
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	entry := &models.LocationHistory{
		UserID:         userID,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		AccuracyMeters: in.AccuracyMeters,
		Address:        addr.Address,
		City:           addr.City,
		State:          addr.State,
		Country:        addr.Country,
		PostalCode:     addr.PostalCode,
		Source:         in.Source,
	}
	if err := s.history.Append(entry); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateLocationByAddress forward-geocodes a manual address and stores the
// resulting coordinates. An unresolvable address is an ErrNotFound-style
// condition for the caller, distinct from invalid input.
func (s *LocationService) UpdateLocationByAddress(ctx context.Context, userID uint, address string) (*models.User, error) {
	result := s.geocoder.Geocode(ctx, address)
	if result == nil {
		return nil, fmt.Errorf("%w: address could not be resolved", domain.ErrNotFound)
	}
	return s.UpdateLocation(ctx, userID, LocationUpdate{
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Source:    domain.LocationSourceManual,
	})
}
