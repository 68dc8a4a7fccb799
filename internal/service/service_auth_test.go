package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/mock"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc: helper creating authService with a mocked repository
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	return svc, repo
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	digest, err := utils.HashPassword(password, testAppConfig.PasswordCost)
	require.NoError(t, err)
	return models.User{UserID: testUserID, Name: "Ana", Email: "a@x.com", PasswordHash: digest}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	input := models.User{Name: "Ana", Email: "a@x.com", Password: "1234"}

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Empty(t, u.Password, "plaintext must not reach the store")
				assert.NotEqual(t, "1234", u.PasswordHash)
				assert.True(t, utils.CheckPassword("1234", u.PasswordHash))
				u.UserID = testUserID
				return u, nil
			},
		),
	)

	got, err := svc.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, testUserID, got.UserID)
	assert.Empty(t, got.PasswordHash)
	assert.Empty(t, got.Password)
}

func TestAuthService_RegisterUser_PasswordTooLongForBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{}, store.ErrUserNotFound)
	// no CreateUser call expected

	_, err := svc.RegisterUser(context.Background(),
		models.User{Name: "Ana", Email: "a@x.com", Password: strings.Repeat("é", 40)})

	var fieldErr *validators.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "senha", fieldErr.Field)
	assert.False(t, fieldErr.Missing())
	assert.NotErrorIs(t, err, ErrPasswordHashing)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mock.MockUserRepository)
	}{
		{
			name: "found by pre-read",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{UserID: testUserID}, nil)
			},
		},
		{
			name: "rejected by unique index",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{}, store.ErrUserNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestAuthSvc(t, ctrl)
			tc.setup(repo)

			_, err := svc.RegisterUser(context.Background(), models.User{Name: "Ana", Email: "a@x.com", Password: "1234"})
			assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
		})
	}
}

func TestAuthService_RegisterUser_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@x.com", Password: "1234"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(storedUser(t, "1234"), nil)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, testUserID, got.UserID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(storedUser(t, "1234"), nil)
	repo.EXPECT().FindUserByEmail(ctx, "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, wrongPassword := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "4321"})
	_, unknownEmail := svc.Login(ctx, models.LoginRequest{Email: "ghost@x.com", Password: "4321"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.NotEmpty(t, svc.dummyDigest, "unknown email must still run a bcrypt comparison")
}

func TestAuthService_Login_EmailIsCaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "A@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "A@x.com", Password: "1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "1234"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
