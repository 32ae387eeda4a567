// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns a recipe history.
type User struct {
	// UserID is the primary key; it is also the "sub" claim of issued tokens
	// and the owner key of every recipe.
	UserID int64 `json:"-"`

	// Login is the unique login name.
	Login string `json:"login" validate:"required,min=3,max=64"`

	// Password is plaintext on the way in and a bcrypt hash at rest.
	// It is never serialized back to clients.
	Password string `json:"password,omitempty" validate:"required,min=6,max=72"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
