// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of field rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - StructValidator: the declarative implementation driven by `validate`
//     struct tags on the request models.
//
// Usage patterns:
//  1. Declare rules with `validate` tags on models.
//  2. Inject a Validator into services.
//  3. Call Validate with context, value, and optional JSON field names to
//     restrict the check to those fields.
//
// The first failing field is reported as a *FieldError carrying the JSON
// field name, so the HTTP layer can name it in the "campo" response field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
