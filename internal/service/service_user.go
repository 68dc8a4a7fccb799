package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
)

type userService struct {
	userRepository store.UserRepository
	passwordCost   int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user.Public(), nil
}

// ListUsers returns every user without credentials, or [ErrNoUsersFound].
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}

	for i := range users {
		users[i] = users[i].Public()
	}

	return users, nil
}

// UpdateUser replaces name, email and password of user.UserID.
//
// Only the owner may update a record: actorID must equal user.UserID.
// The password is rehashed only when it does not already verify against the
// stored digest, so resubmitting the same password counts as unchanged.
func (s *userService) UpdateUser(ctx context.Context, actorID string, user models.User) (models.User, models.UpdateResult, error) {
	if actorID != user.UserID {
		return models.User{}, 0, ErrForbidden
	}

	stored, err := s.userRepository.FindUserByID(ctx, user.UserID)
	if err != nil {
		return models.User{}, 0, fmt.Errorf("error getting user: %w", err)
	}

	samePassword := utils.CheckPassword(user.Password, stored.PasswordHash)
	if samePassword && stored.Name == user.Name && stored.Email == user.Email {
		return stored.Public(), models.UpdateResultUnchanged, nil
	}

	user.PasswordHash = stored.PasswordHash
	if !samePassword {
		if user.PasswordHash, err = hashPassword(user.Password, s.passwordCost); err != nil {
			return models.User{}, 0, err
		}
	}
	user.Password = ""

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, 0, fmt.Errorf("error updating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", updated.UserID).Msg("user updated")
	return updated.Public(), models.UpdateResultUpdated, nil
}

// DeleteUser removes userID and its favorites. Only the owner may delete.
// An unknown userID yields [store.ErrUserNotFound] whoever the caller is.
func (s *userService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID != userID {
		if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
			return fmt.Errorf("error getting user: %w", err)
		}
		return ErrForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
