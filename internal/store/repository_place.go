package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
)

// placeRepository is the PostgreSQL-backed implementation of [PlaceRepository].
type placeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaceRepository constructs a [PlaceRepository] on top of db.
func NewPlaceRepository(db *DB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating place repository")
	return &placeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	created, err := scanPlace(r.db.QueryRowContext(ctx, createPlace,
		place.Name, place.Type, place.Address, place.Phone,
		nullableFloat(place.Rating), nullableFloat(place.Latitude), nullableFloat(place.Longitude),
	))
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.CreatePlace").Msg("error inserting place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *placeRepository) FindPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	log := logger.FromContext(ctx)

	place, err := scanPlace(r.db.QueryRowContext(ctx, findPlaceByID, placeID))
	switch {
	case err == nil:
		return place, nil
	case errors.Is(err, sql.ErrNoRows), isInvalidInput(err):
		return models.Place{}, ErrPlaceNotFound
	default:
		log.Err(err).Str("func", "*placeRepository.FindPlaceByID").Msg("error querying place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListPlaces returns the places matching filter ordered by name. No match
// yields an empty slice and no error.
func (r *placeRepository) ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error) {
	query, args, err := buildListPlacesQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	return r.queryPlaces(ctx, "*placeRepository.ListPlaces", query, args...)
}

func (r *placeRepository) queryPlaces(ctx context.Context, funcName, query string, args ...any) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying places")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		places = append(places, place)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return places, nil
}

// UpdatePlace replaces every editable column of place.PlaceID or returns
// [ErrPlaceNotFound].
func (r *placeRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	updated, err := scanPlace(r.db.QueryRowContext(ctx, updatePlace,
		place.PlaceID, place.Name, place.Type, place.Address, place.Phone,
		nullableFloat(place.Rating), nullableFloat(place.Latitude), nullableFloat(place.Longitude),
	))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Place{}, ErrPlaceNotFound
	default:
		log.Err(err).Str("func", "*placeRepository.UpdatePlace").Msg("error updating place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeletePlace removes the place; favorites cascade.
func (r *placeRepository) DeletePlace(ctx context.Context, placeID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deletePlace, placeID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Msg("error deleting place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}
