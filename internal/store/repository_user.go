package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the stored row with the
// server-assigned UserID and timestamps.
//
// Error handling:
//   - unique_violation on users_email_key (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := scanUser(r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash))
	if err != nil {
		if isUniqueViolation(err, usersEmailKey) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByEmail returns the user whose email equals email exactly, or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows), isInvalidInput(err):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListUsers returns every user ordered by creation time. An empty table
// yields an empty slice and no error.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser replaces name, email and password_hash of user.UserID.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - unique_violation on users_email_key → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, updateUser, user.UserID, user.Name, user.Email, user.PasswordHash))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case isUniqueViolation(err, usersEmailKey):
		return models.User{}, ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeleteUser removes the user; favorites cascade. A missing row yields
// [ErrUserNotFound] and nothing is changed.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
