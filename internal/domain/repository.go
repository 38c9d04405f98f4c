// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository is an immutable snapshot of a GitHub repository as returned
// by the repository-list endpoint.
type Repository struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// User is the slice of a GitHub user profile this application cares
// about. CreatedAt bounds the selectable years.
type User struct {
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}
