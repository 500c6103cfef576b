// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming values before they reach the set cache.
//
// A Validator validates a whole value or, when field names are given, only
// those fields. Services hold a Validator and reject deltas that fail it
// before touching their state.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
