package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
)

// checkIDs fails with ErrMalformedID unless every id is a UUID.
func checkIDs(ids ...string) error {
	for _, id := range ids {
		if !utils.IsUUID(id) {
			return fmt.Errorf("%w: %q", ErrMalformedID, id)
		}
	}
	return nil
}

// ── auth ─────────────────────────────────────────────────────────────────────

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ── users ────────────────────────────────────────────────────────────────────

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if err := checkIDs(userID); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, actorID string, user models.User) (models.User, models.UpdateResult, error) {
	if err := checkIDs(user.UserID); err != nil {
		return models.User{}, 0, err
	}
	// full replace: every field is required
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, 0, fmt.Errorf("error during user validation before updating: %w", err)
	}

	return v.inner.UpdateUser(ctx, actorID, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := checkIDs(userID); err != nil {
		return err
	}

	return v.inner.DeleteUser(ctx, actorID, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// ── places ───────────────────────────────────────────────────────────────────

type PlaceValidationService struct {
	inner     PlaceService
	validator validators.Validator
}

func NewPlaceValidationService(validator validators.Validator) PlaceServiceWrapper {
	return &PlaceValidationService{validator: validator}
}

func (v *PlaceValidationService) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	if err := v.validator.Validate(ctx, place); err != nil {
		return models.Place{}, fmt.Errorf("error during place validation before saving: %w", err)
	}

	return v.inner.CreatePlace(ctx, place)
}

func (v *PlaceValidationService) GetPlace(ctx context.Context, placeID string) (models.Place, error) {
	if err := checkIDs(placeID); err != nil {
		return models.Place{}, err
	}

	return v.inner.GetPlace(ctx, placeID)
}

func (v *PlaceValidationService) ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error) {
	return v.inner.ListPlaces(ctx, filter)
}

func (v *PlaceValidationService) UpdatePlace(ctx context.Context, place models.Place) (models.Place, models.UpdateResult, error) {
	if err := checkIDs(place.PlaceID); err != nil {
		return models.Place{}, 0, err
	}
	if err := v.validator.Validate(ctx, place); err != nil {
		return models.Place{}, 0, fmt.Errorf("error during place validation before updating: %w", err)
	}

	return v.inner.UpdatePlace(ctx, place)
}

func (v *PlaceValidationService) DeletePlace(ctx context.Context, placeID string) error {
	if err := checkIDs(placeID); err != nil {
		return err
	}

	return v.inner.DeletePlace(ctx, placeID)
}

func (v *PlaceValidationService) Locations(ctx context.Context) ([]models.Marker, error) {
	return v.inner.Locations(ctx)
}

func (v *PlaceValidationService) Wrap(inner PlaceService) PlaceService {
	v.inner = inner
	return v
}

// ── favorites ────────────────────────────────────────────────────────────────

type FavoriteValidationService struct {
	inner     FavoriteService
	validator validators.Validator
}

func NewFavoriteValidationService(validator validators.Validator) FavoriteServiceWrapper {
	return &FavoriteValidationService{validator: validator}
}

func (v *FavoriteValidationService) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, models.FavoriteResult, error) {
	if err := v.validator.Validate(ctx, favorite); err != nil {
		return models.Favorite{}, 0, fmt.Errorf("error during favorite validation before saving: %w", err)
	}

	return v.inner.AddFavorite(ctx, favorite)
}

func (v *FavoriteValidationService) ListFavorites(ctx context.Context, userID string) ([]models.Place, error) {
	if err := checkIDs(userID); err != nil {
		return nil, err
	}

	return v.inner.ListFavorites(ctx, userID)
}

func (v *FavoriteValidationService) DeleteFavorite(ctx context.Context, userID, placeID string) error {
	if err := checkIDs(userID, placeID); err != nil {
		return err
	}

	return v.inner.DeleteFavorite(ctx, userID, placeID)
}

func (v *FavoriteValidationService) Wrap(inner FavoriteService) FavoriteService {
	v.inner = inner
	return v
}
