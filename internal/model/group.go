package model

import "time"

// Group represents a named topic a post may be filed under. The slug is the
// stable URL identifier, assigned at creation and never changed afterwards.
type Group struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// Constraints
const (
	MaxGroupTitleLength = 200
	MaxGroupSlugLength  = 50
)

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
