// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as the router's NotFound handler so that unknown
// paths answer with the same JSON error body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
