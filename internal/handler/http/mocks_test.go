package http

import (
	"context"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/models"
)

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

type mockAuthenticator struct {
	mode           string
	issueFn        func(ctx context.Context, user models.User) (models.Credential, error)
	authenticateFn func(ctx context.Context, credential string) (string, error)
}

func (m *mockAuthenticator) Mode() string {
	if m.mode == "" {
		return config.AuthModeToken
	}
	return m.mode
}

func (m *mockAuthenticator) Issue(ctx context.Context, user models.User) (models.Credential, error) {
	return m.issueFn(ctx, user)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, credential string) (string, error) {
	return m.authenticateFn(ctx, credential)
}

// mockRevokingAuthenticator is a session-mode authenticator.
type mockRevokingAuthenticator struct {
	mockAuthenticator
	revokeFn func(ctx context.Context, credential string) error
}

func (m *mockRevokingAuthenticator) Revoke(ctx context.Context, credential string) error {
	return m.revokeFn(ctx, credential)
}

type mockUserService struct {
	getUserFn    func(ctx context.Context, userID string) (models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn func(ctx context.Context, actorID string, user models.User) (models.User, models.UpdateResult, error)
	deleteUserFn func(ctx context.Context, actorID, userID string) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, actorID string, user models.User) (models.User, models.UpdateResult, error) {
	return m.updateUserFn(ctx, actorID, user)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actorID, userID string) error {
	return m.deleteUserFn(ctx, actorID, userID)
}

type mockPlaceService struct {
	createPlaceFn func(ctx context.Context, place models.Place) (models.Place, error)
	getPlaceFn    func(ctx context.Context, placeID string) (models.Place, error)
	listPlacesFn  func(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error)
	updatePlaceFn func(ctx context.Context, place models.Place) (models.Place, models.UpdateResult, error)
	deletePlaceFn func(ctx context.Context, placeID string) error
	locationsFn   func(ctx context.Context) ([]models.Marker, error)
}

func (m *mockPlaceService) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	return m.createPlaceFn(ctx, place)
}

func (m *mockPlaceService) GetPlace(ctx context.Context, placeID string) (models.Place, error) {
	return m.getPlaceFn(ctx, placeID)
}

func (m *mockPlaceService) ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error) {
	return m.listPlacesFn(ctx, filter)
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, place models.Place) (models.Place, models.UpdateResult, error) {
	return m.updatePlaceFn(ctx, place)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, placeID string) error {
	return m.deletePlaceFn(ctx, placeID)
}

func (m *mockPlaceService) Locations(ctx context.Context) ([]models.Marker, error) {
	return m.locationsFn(ctx)
}

type mockFavoriteService struct {
	addFavoriteFn    func(ctx context.Context, favorite models.Favorite) (models.Favorite, models.FavoriteResult, error)
	listFavoritesFn  func(ctx context.Context, userID string) ([]models.Place, error)
	deleteFavoriteFn func(ctx context.Context, userID, placeID string) error
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, models.FavoriteResult, error) {
	return m.addFavoriteFn(ctx, favorite)
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Place, error) {
	return m.listFavoritesFn(ctx, userID)
}

func (m *mockFavoriteService) DeleteFavorite(ctx context.Context, userID, placeID string) error {
	return m.deleteFavoriteFn(ctx, userID, placeID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
