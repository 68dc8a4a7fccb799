package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	userRepository     store.UserRepository
	placeRepository    store.PlaceRepository

	logger *logger.Logger
}

func NewFavoriteService(
	favoriteRepository store.FavoriteRepository,
	userRepository store.UserRepository,
	placeRepository store.PlaceRepository,
	logger *logger.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		userRepository:     userRepository,
		placeRepository:    placeRepository,
		logger:             logger,
	}
}

// AddFavorite links a user to a place once.
//
// Both references are checked first so the error names the missing entity:
// [store.ErrUserNotFound] or [store.ErrPlaceNotFound]. A pair that is already
// stored yields [models.FavoriteAlreadyExists] and no new row.
func (s *favoriteService) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, models.FavoriteResult, error) {
	if _, err := s.userRepository.FindUserByID(ctx, favorite.UserID); err != nil {
		return models.Favorite{}, 0, fmt.Errorf("error checking favorite user: %w", err)
	}
	if _, err := s.placeRepository.FindPlaceByID(ctx, favorite.PlaceID); err != nil {
		return models.Favorite{}, 0, fmt.Errorf("error checking favorite place: %w", err)
	}

	saved, created, err := s.favoriteRepository.AddFavorite(ctx, favorite)
	if err != nil {
		return models.Favorite{}, 0, fmt.Errorf("error adding favorite: %w", err)
	}
	if !created {
		return models.Favorite{}, models.FavoriteAlreadyExists, nil
	}

	logger.FromContext(ctx).Info().
		Str("user_id", saved.UserID).
		Str("place_id", saved.PlaceID).
		Msg("favorite added")
	return saved, models.FavoriteCreated, nil
}

// ListFavorites returns the places userID favorited.
// It fails with [store.ErrUserNotFound] for an unknown user and with
// [ErrNoFavoritesFound] when the user has none.
func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Place, error) {
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("error checking favorite user: %w", err)
	}

	places, err := s.favoriteRepository.ListFavoritePlaces(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNoFavoritesFound
	}

	return places, nil
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, userID, placeID string) error {
	if err := s.favoriteRepository.DeleteFavorite(ctx, userID, placeID); err != nil {
		return fmt.Errorf("error deleting favorite: %w", err)
	}

	return nil
}
