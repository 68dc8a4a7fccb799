package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository]. Idempotency of AddFavorite rests on the
// favorites_user_place_key unique constraint.
type favoriteRepository struct {
	places *placeRepository
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] on top of db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		places: &placeRepository{db: db, logger: logger},
		db:     db,
		logger: logger,
	}
}

// AddFavorite inserts the pair with ON CONFLICT DO NOTHING, so a repeated
// call leaves exactly one row and reports created == false.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrReferenceNotFound].
func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, bool, error) {
	log := logger.FromContext(ctx)

	var saved models.Favorite
	err := r.db.QueryRowContext(ctx, addFavorite, favorite.UserID, favorite.PlaceID).
		Scan(&saved.FavoriteID, &saved.UserID, &saved.PlaceID, &saved.CreatedAt)
	switch {
	case err == nil:
		return saved, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Favorite{}, false, nil
	case isForeignKeyViolation(err):
		return models.Favorite{}, false, ErrReferenceNotFound
	default:
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error inserting favorite")
		return models.Favorite{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// ListFavoritePlaces returns the places favorited by userID.
func (r *favoriteRepository) ListFavoritePlaces(ctx context.Context, userID string) ([]models.Place, error) {
	query, args, err := buildListFavoritePlacesQuery(ctx, userID)
	if err != nil {
		return nil, err
	}

	return r.places.queryPlaces(ctx, "*favoriteRepository.ListFavoritePlaces", query, args...)
}

// DeleteFavorite removes the pair or returns [ErrFavoriteNotFound].
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, placeID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteFavorite, userID, placeID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("error deleting favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
