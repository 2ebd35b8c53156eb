package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
	"github.com/plumeworks/plume/pkg/jwt"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockUserRepo struct {
	createFunc        func(ctx context.Context, user *model.User) error
	getByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func newAuthMux(t *testing.T, repo *mockUserRepo) *http.ServeMux {
	t.Helper()
	if repo == nil {
		repo = &mockUserRepo{}
	}
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         "test-secret",
		Issuer:         "plume-test",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("failed to create jwt service: %v", err)
	}
	svc := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   repo,
		JWTService: jwtService,
	})
	h := NewAuthHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("GET /v1/auth/me", h.Me)
	return mux
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Valid_Returns201WithSession(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:ada"
			return nil
		},
	})

	body := jsonBody(t, map[string]string{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data SessionResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Token.AccessToken == "" || resp.Data.Token.TokenType != "Bearer" {
		t.Errorf("expected a bearer token, got %+v", resp.Data.Token)
	}
	if resp.Data.User == nil || resp.Data.User.Username != "ada" {
		t.Errorf("expected the user back, got %+v", resp.Data.User)
	}
}

func TestRegister_ShortPassword_Returns422(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, nil)

	body := jsonBody(t, map[string]string{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "short",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestRegister_NeverEchoesPasswordOrHash(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, nil)

	body := jsonBody(t, map[string]string{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var fields map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&fields); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	raw, _ := json.Marshal(fields)
	for _, forbidden := range []string{"correct-horse", "hash"} {
		if strings.Contains(string(raw), forbidden) {
			t.Errorf("response leaks %q", forbidden)
		}
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_CorrectCredentials_Returns200(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	hashStr := string(hash)

	mux := newAuthMux(t, &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{ID: "user:ada", Username: username, Hash: &hashStr, Role: model.UserRoleUser}, nil
		},
	})

	body := jsonBody(t, map[string]string{"username": "ada", "password": "correct-horse"})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogin_WrongPassword_Returns401(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	hashStr := string(hash)

	mux := newAuthMux(t, &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{ID: "user:ada", Username: username, Hash: &hashStr}, nil
		},
	})

	body := jsonBody(t, map[string]string{"username": "ada", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogin_UnknownUser_Returns401(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, nil)

	body := jsonBody(t, map[string]string{"username": "ghost", "password": "anything"})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// ============================================================================
// Me Tests
// ============================================================================

func TestMe_KnownIdentity_ReturnsAccount(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Username: "ada"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req = asIdentity(req, ada)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data model.User `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Username != "ada" {
		t.Errorf("expected the account back, got %+v", resp.Data)
	}
}
