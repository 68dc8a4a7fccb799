package service

import "errors"

// Request and authorization errors.
var (
	// ErrMalformedID is returned when a path identifier is not a UUID.
	ErrMalformedID = errors.New("malformed id")

	// ErrForbidden is returned when the authenticated caller is not the
	// owner of the resource it tries to change.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidCredentials is returned by Login for both an unknown email and
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credential verification errors. The access-control middleware maps each
// to its own response.
var (
	ErrMissingToken = errors.New("token is missing")
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token is expired")
)

// Empty listings.
var (
	ErrNoUsersFound     = errors.New("no users found")
	ErrNoPlacesFound    = errors.New("no places found")
	ErrNoFavoritesFound = errors.New("no favorites found")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnknownAuthMode       = errors.New("unknown auth mode")
)
