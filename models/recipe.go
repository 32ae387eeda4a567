// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultRecipeTitle is used when generated content carries no "# " heading.
const DefaultRecipeTitle = "VibeChef recipe"

// Recipe is a generated recipe owned by a single user.
//
// ID is empty until the remote store persists the recipe for the first time
// and never changes afterwards. Timestamp holds creation time in epoch
// milliseconds; history lists are ordered by it, newest first.
type Recipe struct {
	ID         string `json:"id" db:"id"`
	UserID     int64  `json:"user_id" db:"user_id"`
	Title      string `json:"title" db:"title" validate:"required,max=256"`
	Content    string `json:"content" db:"content" validate:"required"`
	Timestamp  int64  `json:"timestamp" db:"timestamp" validate:"gte=0"`
	IsFavorite bool   `json:"is_favorite" db:"is_favorite"`
}

// CreatedAt converts Timestamp to a local time value.
func (r Recipe) CreatedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// IsPersisted reports whether the recipe already has a store-assigned ID.
func (r Recipe) IsPersisted() bool {
	return r.ID != ""
}

// TableName returns the name of the table holding recipes on both sides.
func (r Recipe) TableName() string {
	return "recipes"
}

// Recipe fields that may be changed through a partial update.
const (
	FieldIsFavorite = "is_favorite"
	FieldTitle      = "title"
)
