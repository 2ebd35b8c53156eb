package handler

import (
	"errors"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrPostNotFound):
		return model.NewNotFoundError("post")
	case errors.Is(err, service.ErrGroupNotFound):
		return model.NewNotFoundError("group")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrAccountExists),
		errors.Is(err, service.ErrGroupSlugExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrUsernameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidEmail):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})

	case errors.Is(err, service.ErrTextRequired):
		return model.NewValidationError([]model.FieldError{{Field: "text", Message: err.Error()}})
	case errors.Is(err, service.ErrUnknownGroup):
		return model.NewValidationError([]model.FieldError{{Field: "group_id", Message: err.Error()}})

	case errors.Is(err, service.ErrGroupTitleRequired),
		errors.Is(err, service.ErrGroupTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrGroupSlugRequired),
		errors.Is(err, service.ErrGroupSlugInvalid),
		errors.Is(err, service.ErrGroupSlugTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "slug", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
