package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/mock"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Invalid input must be rejected before any repository call; the gomock
// controllers below fail the test on an unexpected call.

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *validators.FieldError
	require.True(t, errors.As(err, &fe), "expected *validators.FieldError, got %v", err)
	return fe.Field
}

func TestAuthValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthValidationService(validators.NewStructValidator()).
		Wrap(NewAuthService(repo, testAppConfig, logger.Nop()))
	ctx := context.Background()

	tests := []struct {
		name      string
		user      models.User
		wantField string
	}{
		{"missing name", models.User{Email: "a@x.com", Password: "1234"}, "nome"},
		{"missing email", models.User{Name: "Ana", Password: "1234"}, "email"},
		{"bad email", models.User{Name: "Ana", Email: "nope", Password: "1234"}, "email"},
		{"missing password", models.User{Name: "Ana", Email: "a@x.com"}, "senha"},
		{"short password", models.User{Name: "Ana", Email: "a@x.com", Password: "123"}, "senha"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tc.user)
			require.ErrorIs(t, err, validators.ErrValidation)
			assert.Equal(t, tc.wantField, fieldOf(t, err))
		})
	}

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com"})
	require.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, "senha", fieldOf(t, err))
}

func TestUserValidationService_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserValidationService(validators.NewStructValidator()).
		Wrap(NewUserService(repo, testAppConfig, logger.Nop()))
	ctx := context.Background()

	_, err := svc.GetUser(ctx, "42")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, _, err = svc.UpdateUser(ctx, testUserID, models.User{UserID: "not-a-uuid", Name: "Ana", Email: "a@x.com", Password: "1234"})
	assert.ErrorIs(t, err, ErrMalformedID)

	assert.ErrorIs(t, svc.DeleteUser(ctx, testUserID, "65f1c0ffee0000000000beef"), ErrMalformedID)
}

func TestUserValidationService_UpdateRequiresEveryField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserValidationService(validators.NewStructValidator()).
		Wrap(NewUserService(repo, testAppConfig, logger.Nop()))

	_, _, err := svc.UpdateUser(context.Background(), testUserID, models.User{UserID: testUserID, Name: "Ana", Email: "a@x.com"})
	require.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, "senha", fieldOf(t, err))
}

func TestUserValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserValidationService(validators.NewStructValidator()).
		Wrap(NewUserService(repo, testAppConfig, logger.Nop()))

	repo.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(storedUser(t, "1234"), nil)
	repo.EXPECT().ListUsers(gomock.Any()).Return([]models.User{storedUser(t, "1234")}, nil)

	_, err := svc.GetUser(context.Background(), testUserID)
	require.NoError(t, err)
	_, err = svc.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestPlaceValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPlaceRepository(ctrl)
	svc := NewPlaceValidationService(validators.NewStructValidator()).
		Wrap(NewPlaceService(repo, logger.Nop()))
	ctx := context.Background()

	noAddress := samplePlace()
	noAddress.Address = ""
	_, err := svc.CreatePlace(ctx, noAddress)
	assert.Equal(t, "endereco", fieldOf(t, err))

	badRating := samplePlace()
	badRating.Rating = floatPtr(7)
	_, err = svc.CreatePlace(ctx, badRating)
	assert.Equal(t, "avaliacao", fieldOf(t, err))

	badLat := samplePlace()
	badLat.Latitude = floatPtr(91)
	_, _, err = svc.UpdatePlace(ctx, badLat)
	assert.Equal(t, "latitude", fieldOf(t, err))

	malformed := samplePlace()
	malformed.PlaceID = "abc"
	_, _, err = svc.UpdatePlace(ctx, malformed)
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = svc.GetPlace(ctx, "abc")
	assert.ErrorIs(t, err, ErrMalformedID)
	assert.ErrorIs(t, svc.DeletePlace(ctx, "abc"), ErrMalformedID)

	repo.EXPECT().ListPlaces(gomock.Any(), models.PlaceFilter{}).Return([]models.Place{samplePlace()}, nil).Times(2)
	_, err = svc.ListPlaces(ctx, models.PlaceFilter{})
	require.NoError(t, err)
	_, err = svc.Locations(ctx)
	require.NoError(t, err)
}

func TestFavoriteValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewFavoriteValidationService(validators.NewStructValidator()).
		Wrap(NewFavoriteService(
			mock.NewMockFavoriteRepository(ctrl),
			mock.NewMockUserRepository(ctrl),
			mock.NewMockPlaceRepository(ctrl),
			logger.Nop(),
		))
	ctx := context.Background()

	_, _, err := svc.AddFavorite(ctx, models.Favorite{PlaceID: testPlaceID})
	assert.Equal(t, "usuario_id", fieldOf(t, err))

	_, _, err = svc.AddFavorite(ctx, models.Favorite{UserID: testUserID, PlaceID: "7"})
	assert.Equal(t, "local_id", fieldOf(t, err))

	_, err = svc.ListFavorites(ctx, "7")
	assert.ErrorIs(t, err, ErrMalformedID)

	assert.ErrorIs(t, svc.DeleteFavorite(ctx, testUserID, "7"), ErrMalformedID)
}
