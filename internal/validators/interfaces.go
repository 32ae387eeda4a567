// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound values against the constraints declared
// in the `validate` struct tags of the models package.
//
// Validators are injected into services and handlers so that transport code
// never has to know the rules. Callers may restrict a check to named struct
// fields, which is how partial updates are validated.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the given
// struct field names.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
