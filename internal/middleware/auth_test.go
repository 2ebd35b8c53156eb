package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/pkg/jwt"
)

// ============================================================================
// Mock Auth Service
// ============================================================================

type mockAuthService struct {
	validateFunc func(token string) (*jwt.Claims, error)
}

func (m *mockAuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	if m.validateFunc != nil {
		return m.validateFunc(token)
	}
	return nil, jwt.ErrInvalidToken
}

func validTokenService(claims *jwt.Claims) *mockAuthService {
	return &mockAuthService{
		validateFunc: func(token string) (*jwt.Claims, error) {
			if token == "good-token" {
				return claims, nil
			}
			return nil, jwt.ErrInvalidToken
		},
	}
}

func identityEcho(t *testing.T, got *model.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ============================================================================
// Auth Tests
// ============================================================================

func TestAuth_ValidToken_ResolvesIdentity(t *testing.T) {
	t.Parallel()

	svc := validTokenService(&jwt.Claims{UserID: "user:ada", Username: "ada", Role: "user"})

	var got model.Identity
	handler := Auth(svc)(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.UserID != "user:ada" || got.Username != "ada" {
		t.Errorf("unexpected identity: %+v", got)
	}
	if got.Role != model.UserRoleUser {
		t.Errorf("expected user role, got %q", got.Role)
	}
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	t.Parallel()

	handler := Auth(&mockAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json, got %q", ct)
	}
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	t.Parallel()

	handler := Auth(&mockAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	for _, header := range []string{"good-token", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return nil, jwt.ErrTokenExpired
		},
	}
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// ============================================================================
// OptionalAuth Tests
// ============================================================================

func TestOptionalAuth_NoToken_AnonymousPassesThrough(t *testing.T) {
	t.Parallel()

	var got model.Identity
	handler := OptionalAuth(&mockAuthService{})(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Authenticated() {
		t.Errorf("expected the anonymous identity, got %+v", got)
	}
}

func TestOptionalAuth_BadToken_StillPassesThrough(t *testing.T) {
	t.Parallel()

	var got model.Identity
	svc := &mockAuthService{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return nil, errors.New("garbage token")
		},
	}
	handler := OptionalAuth(svc)(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a public route, got %d", rec.Code)
	}
	if got.Authenticated() {
		t.Errorf("expected the anonymous identity, got %+v", got)
	}
}

func TestOptionalAuth_ValidToken_ResolvesIdentity(t *testing.T) {
	t.Parallel()

	svc := validTokenService(&jwt.Claims{UserID: "user:ada", Username: "ada", Role: "user"})

	var got model.Identity
	handler := OptionalAuth(svc)(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !got.Authenticated() || got.UserID != "user:ada" {
		t.Errorf("expected the signed-in identity, got %+v", got)
	}
}

// ============================================================================
// AdminAuth Tests
// ============================================================================

func TestAdminAuth_AdminRole_Allowed(t *testing.T) {
	t.Parallel()

	svc := validTokenService(&jwt.Claims{UserID: "user:root", Username: "root", Role: "admin"})

	var got model.Identity
	handler := AdminAuth(svc)(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodPost, "/v1/groups", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !got.IsAdmin() {
		t.Errorf("expected admin identity, got %+v", got)
	}
}

func TestAdminAuth_UserRole_Returns403(t *testing.T) {
	t.Parallel()

	svc := validTokenService(&jwt.Claims{UserID: "user:ada", Username: "ada", Role: "user"})

	handler := AdminAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without admin role")
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/groups", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAdminAuth_NoToken_Returns401(t *testing.T) {
	t.Parallel()

	handler := AdminAuth(&mockAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/groups", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
