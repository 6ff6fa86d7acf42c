// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// service layer.
//
// [Validator] is implemented by [RequestValidator], which evaluates the
// `validate` struct tags of the models package with go-playground/validator
// and reports failures by their JSON field names.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates v and optionally restricts validation to the
	// named fields.
	Validate(ctx context.Context, v any, fields ...string) error
}
