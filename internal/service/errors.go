package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountExists      = errors.New("username or email already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username exceeds maximum length")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// ===== Post Errors =====
var (
	ErrPostNotFound = errors.New("post not found")
	ErrTextRequired = errors.New("text required")
	ErrUnknownGroup = errors.New("unknown group")
)

// ===== Feed Errors =====
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ===== Group Errors =====
var (
	ErrGroupTitleRequired = errors.New("group title is required")
	ErrGroupTitleTooLong  = errors.New("group title exceeds maximum length")
	ErrGroupSlugRequired  = errors.New("group slug is required")
	ErrGroupSlugInvalid   = errors.New("group slug must contain only lowercase letters, digits and hyphens")
	ErrGroupSlugTooLong   = errors.New("group slug exceeds maximum length")
	ErrGroupSlugExists    = errors.New("a group with this slug already exists")
)
