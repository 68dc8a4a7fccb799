// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-map-places server handlers and middleware.
//
// Err* constants are the machine-readable kinds written into the "erro" field
// of every error body. Msg* constants are the human-readable Portuguese
// messages written into the "mensagem" field or into success bodies. Keeping
// them in one place ensures consistent wording throughout the API.
package app

// Error kinds.
const (
	// ErrValidation marks a missing or malformed request field.
	ErrValidation = "ValidationError"

	// ErrMalformedID marks a path identifier that is not a valid UUID.
	ErrMalformedID = "MalformedID"

	// ErrNotFound marks a read, update, or delete of an absent record.
	ErrNotFound = "NotFoundError"

	// ErrConflict marks a violated uniqueness constraint (duplicate email).
	ErrConflict = "ConflictError"

	// ErrForbidden marks an authenticated caller acting on another user's record.
	ErrForbidden = "Forbidden"

	// ErrMissingToken marks a protected request without any credential.
	ErrMissingToken = "MissingToken"

	// ErrInvalidToken marks a credential with a bad signature or structure.
	ErrInvalidToken = "InvalidToken"

	// ErrExpiredToken marks a well-formed credential past its expiry.
	ErrExpiredToken = "ExpiredToken"

	// ErrInvalidCredentials marks a failed login.
	ErrInvalidCredentials = "InvalidCredentials"

	// ErrTooManyRequests marks a rate-limited login attempt.
	ErrTooManyRequests = "TooManyRequests"

	// ErrMethodNotAllowed marks a known path requested with an unsupported method.
	ErrMethodNotAllowed = "MethodNotAllowed"

	// ErrStore marks any unexpected storage failure.
	ErrStore = "StoreError"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "dados inválidos"

	// MsgMissingField prefixes the name of a required field that is absent.
	MsgMissingField = "campo obrigatório ausente"

	// MsgInvalidField prefixes the name of a field that fails a format rule.
	MsgInvalidField = "campo inválido"

	// MsgMissingLoginFields is returned when /login lacks email or senha.
	MsgMissingLoginFields = "email e senha são obrigatórios"

	// MsgInvalidCredentials is the single login failure message for both
	// unknown email and wrong password.
	MsgInvalidCredentials = "credenciais inválidas"

	// MsgMalformedID is returned when a path id is not a valid UUID.
	MsgMalformedID = "id inválido"

	// MsgInternalServerError is returned for any storage or unexpected
	// failure. The underlying error is only logged.
	MsgInternalServerError = "erro interno do servidor"

	// MsgTokenMissing is returned when a protected route is called without
	// a token or session cookie.
	MsgTokenMissing = "token ausente"

	// MsgTokenInvalid is returned when the credential cannot be verified.
	MsgTokenInvalid = "token inválido"

	// MsgTokenExpired is returned when the credential is past its expiry.
	MsgTokenExpired = "token expirado"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// modify a record that belongs to a different user.
	MsgAccessDenied = "acesso negado"

	// MsgTooManyRequests is returned by the login rate limiter.
	MsgTooManyRequests = "muitas tentativas, tente novamente mais tarde"

	// MsgEmailAlreadyExists is returned when registration or update reuses
	// an email held by another user.
	MsgEmailAlreadyExists = "email já cadastrado"

	// MsgUserNotFound is returned for an absent user.
	MsgUserNotFound = "usuário não encontrado"

	// MsgPlaceNotFound is returned for an absent place.
	MsgPlaceNotFound = "local não encontrado"

	// MsgReferenceNotFound is returned when a favorite points at a user or
	// place removed while the request was in flight.
	MsgReferenceNotFound = "usuário ou local não encontrado"

	// MsgRouteNotFound is returned for paths the API does not serve.
	MsgRouteNotFound = "rota não encontrada"

	// MsgMethodNotAllowed is returned when the path exists but not for the
	// requested method.
	MsgMethodNotAllowed = "método não permitido"

	// MsgFavoriteNotFound is returned for an absent favorite.
	MsgFavoriteNotFound = "favorito não encontrado"

	// MsgNoUsersFound is returned when the user collection is empty.
	MsgNoUsersFound = "nenhum usuário encontrado"

	// MsgNoPlacesFound is returned when no place matches the listing.
	MsgNoPlacesFound = "nenhum local encontrado"

	// MsgNoFavoritesFound is returned when the user has no favorites.
	MsgNoFavoritesFound = "nenhum favorito encontrado"

	// MsgNoChanges is returned when an update matches the stored record.
	MsgNoChanges = "nenhuma alteração realizada"

	// MsgFavoriteAlreadyExists is returned when a favorite pair is added twice.
	MsgFavoriteAlreadyExists = "favorito já existe"

	// MsgLoggedIn is returned after a successful session login.
	MsgLoggedIn = "login realizado com sucesso"

	// MsgLoggedOut is returned after a successful logout.
	MsgLoggedOut = "logout realizado com sucesso"

	// StatusRemoved is the "status" value of a successful delete.
	StatusRemoved = "removido"
)
