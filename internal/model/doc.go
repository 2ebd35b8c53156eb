// Package model defines domain entities and data structures for the Plume API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Group: Named topic a post may be filed under
//   - Post: Short text entry authored by a user
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Group struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	    Slug  string `json:"slug"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
