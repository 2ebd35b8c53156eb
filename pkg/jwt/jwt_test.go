package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:         "test-secret",
		Issuer:         "plume-test",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestNewService_EmptySecret_Fails(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{Issuer: "plume-test", ExpirationMins: 60})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestSignAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	token, err := svc.Sign(Claims{UserID: "user:ada", Username: "ada", Role: "user"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate: %v", err)
	}
	if claims.UserID != "user:ada" || claims.Username != "ada" || claims.Role != "user" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "plume-test" {
		t.Errorf("expected issuer stamped, got %q", claims.Issuer)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Errorf("expected a future expiry, got %v", claims.ExpiresAt)
	}
}

func TestValidate_Garbage_Fails(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestValidate_WrongSecret_Fails(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	other, err := NewService(Config{
		Secret:         "another-secret",
		Issuer:         "plume-test",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	token, err := other.Sign(Claims{UserID: "user:ada"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_Expired_Fails(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		UserID: "user:ada",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongIssuer_Fails(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	other, err := NewService(Config{
		Secret:         "test-secret",
		Issuer:         "someone-else",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	token, err := other.Sign(Claims{UserID: "user:ada"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Error("expected validation to fail for a foreign issuer")
	}
}

func TestClaims_IsAdmin(t *testing.T) {
	t.Parallel()

	if !(&Claims{Role: "admin"}).IsAdmin() {
		t.Error("expected admin claims to report admin")
	}
	if (&Claims{Role: "user"}).IsAdmin() {
		t.Error("expected user claims not to report admin")
	}
}
