package handler

import (
	"net/http"

	"github.com/plumeworks/plume/internal/middleware"
	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenResponse represents a token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// SessionResponse pairs an account with a fresh token
type SessionResponse struct {
	User  *model.User   `json:"user"`
	Token TokenResponse `json:"token"`
}

func (h *AuthHandler) toSessionResponse(user *model.User, token string) SessionResponse {
	return SessionResponse{
		User: user,
		Token: TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int(h.authService.TokenExpiration().Seconds()),
		},
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, token, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, h.toSessionResponse(user, token), map[string]string{
		"self": "/v1/auth/me",
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, h.toSessionResponse(user, token), map[string]string{
		"self": "/v1/auth/me",
	})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, map[string]string{
		"self":        "/v1/auth/me",
		"author_feed": "/v1/users/" + user.Username + "/posts",
	})
}
