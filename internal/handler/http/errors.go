// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when the request body is empty, too
	// large, or not valid JSON.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidGzipBody is returned by the gzip middleware when the request
	// declares Content-Encoding: gzip but the body cannot be decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")

	// ErrRouteNotFound is returned for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when a route matches the path but not
	// the method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrTooManyRequests is returned when the login rate limit is exceeded.
	ErrTooManyRequests = errors.New("too many requests")
)
