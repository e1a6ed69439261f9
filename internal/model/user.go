// Package model defines domain entities for the application.
package model

import "time"

// User represents the administrative account that can mutate the catalog.
// Email is unique; exactly one admin user is seeded at bootstrap.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never serialize
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}
