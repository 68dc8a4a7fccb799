package service

import (
	"context"

	"github.com/MKhiriev/go-map-places/models"
)

// AuthService registers accounts and checks login credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.LoginRequest) (models.User, error)
}

// Authenticator proves caller identity on a request. There are two
// implementations: stateless signed tokens and server-side sessions.
type Authenticator interface {
	// Mode returns config.AuthModeToken or config.AuthModeSession.
	Mode() string

	// Issue mints a credential for a user that has just logged in.
	Issue(ctx context.Context, user models.User) (models.Credential, error)

	// Authenticate resolves the user id asserted by a raw credential.
	// It returns ErrMissingToken, ErrInvalidToken or ErrExpiredToken.
	Authenticate(ctx context.Context, credential string) (string, error)
}

// Revoker is implemented by authenticators whose credentials can be
// invalidated before they expire.
type Revoker interface {
	Revoke(ctx context.Context, credential string) error
}

// UserService manages user records. Mutations take the authenticated caller
// id explicitly and are allowed only on the caller's own record.
type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, actorID string, user models.User) (models.User, models.UpdateResult, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}

type PlaceService interface {
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	GetPlace(ctx context.Context, placeID string) (models.Place, error)
	ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error)
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, models.UpdateResult, error)
	DeletePlace(ctx context.Context, placeID string) error

	// Locations returns a marker for every place that has coordinates.
	Locations(ctx context.Context) ([]models.Marker, error)
}

type FavoriteService interface {
	AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, models.FavoriteResult, error)
	ListFavorites(ctx context.Context, userID string) ([]models.Place, error)
	DeleteFavorite(ctx context.Context, userID, placeID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as request validation. The other wrappers do the same for their services.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type PlaceServiceWrapper interface {
	Wrap(PlaceService) PlaceService
}

type FavoriteServiceWrapper interface {
	Wrap(FavoriteService) FavoriteService
}
