package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths pay for one bcrypt comparison.
const dummyPassword = "go-map-places:no-such-user"

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordCost is the bcrypt cost for new digests.
	passwordCost int

	dummyOnce   sync.Once
	dummyDigest string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is looked up first so the common duplicate case is reported
// without a failed insert; the unique index still rejects a concurrent
// duplicate with the same error.
//
// Returns the persisted user without credentials or:
//   - [store.ErrEmailAlreadyExists] if the email is taken.
//   - A wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := hashPassword(user.Password, a.passwordCost)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = digest
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield [ErrInvalidCredentials].
// Any other repository failure is returned wrapped.
func (a *authService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.CheckPassword(credentials.Password, a.dummy())
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(credentials.Password, foundUser.PasswordHash) {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Public(), nil
}

func (a *authService) dummy() string {
	a.dummyOnce.Do(func() {
		a.dummyDigest, _ = utils.HashPassword(dummyPassword, a.passwordCost)
	})
	return a.dummyDigest
}

// hashPassword digests plain. A password bcrypt refuses as too long is
// reported as a validation failure on "senha", not as a hashing fault.
func hashPassword(plain string, cost int) (string, error) {
	digest, err := utils.HashPassword(plain, cost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", &validators.FieldError{Field: "senha", Tag: validators.TagBcryptMax}
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return digest, nil
}
