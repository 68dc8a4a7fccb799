package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/models"
)

type placeService struct {
	placeRepository store.PlaceRepository

	logger *logger.Logger
}

func NewPlaceService(placeRepository store.PlaceRepository, logger *logger.Logger) PlaceService {
	return &placeService{
		placeRepository: placeRepository,
		logger:          logger,
	}
}

func (s *placeService) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	place.PlaceID = ""

	created, err := s.placeRepository.CreatePlace(ctx, place)
	if err != nil {
		return models.Place{}, fmt.Errorf("error creating place: %w", err)
	}

	return created, nil
}

func (s *placeService) GetPlace(ctx context.Context, placeID string) (models.Place, error) {
	place, err := s.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("error getting place: %w", err)
	}

	return place, nil
}

// ListPlaces returns the places matching filter, or [ErrNoPlacesFound].
func (s *placeService) ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error) {
	places, err := s.placeRepository.ListPlaces(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing places: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNoPlacesFound
	}

	return places, nil
}

// UpdatePlace replaces every editable field of place.PlaceID. Submitting the
// stored values reports [models.UpdateResultUnchanged] without writing.
func (s *placeService) UpdatePlace(ctx context.Context, place models.Place) (models.Place, models.UpdateResult, error) {
	stored, err := s.placeRepository.FindPlaceByID(ctx, place.PlaceID)
	if err != nil {
		return models.Place{}, 0, fmt.Errorf("error getting place: %w", err)
	}

	if stored.SameContent(place) {
		return stored, models.UpdateResultUnchanged, nil
	}

	updated, err := s.placeRepository.UpdatePlace(ctx, place)
	if err != nil {
		return models.Place{}, 0, fmt.Errorf("error updating place: %w", err)
	}

	return updated, models.UpdateResultUpdated, nil
}

func (s *placeService) DeletePlace(ctx context.Context, placeID string) error {
	if err := s.placeRepository.DeletePlace(ctx, placeID); err != nil {
		return fmt.Errorf("error deleting place: %w", err)
	}

	logger.FromContext(ctx).Info().Str("place_id", placeID).Msg("place deleted")
	return nil
}

// Locations returns the marker feed. An empty catalogue yields an empty,
// non-nil slice.
func (s *placeService) Locations(ctx context.Context) ([]models.Marker, error) {
	places, err := s.placeRepository.ListPlaces(ctx, models.PlaceFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing places: %w", err)
	}

	markers := make([]models.Marker, 0, len(places))
	for _, place := range places {
		if marker, ok := place.Marker(); ok {
			markers = append(markers, marker)
		}
	}

	return markers, nil
}
