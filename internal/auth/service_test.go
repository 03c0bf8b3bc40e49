package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

const testPassword = "korrekt-pferd-batterie"

func testService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	cfg := &config.Config{
		AdminEmail:        "admin@zerowaste-frankfurt.de",
		AdminPasswordHash: string(hash),
		JWTAccessSecret:   "test-secret",
		AccessTokenTTL:    time.Hour,
	}

	return NewService(cfg, logger.New("development"))
}

func TestSignInIssuesAccessToken(t *testing.T) {
	svc := testService(t)

	resp, err := svc.SignIn(SignInRequest{
		Email:    "Admin@Zerowaste-Frankfurt.de",
		Password: testPassword,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(resp.AccessToken, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["sub"] != "admin@zerowaste-frankfurt.de" {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["type"] != accessTokenType {
		t.Errorf("type = %v", claims["type"])
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@zerowaste-frankfurt.de", "falsch"},
		{"wrong email", "someone@example.de", testPassword},
		{"both wrong", "someone@example.de", "falsch"},
	}

	for _, tc := range tests {
		_, err := svc.SignIn(SignInRequest{Email: tc.email, Password: tc.password})
		if !apperr.Is(err, apperr.KindUnauthorized) {
			t.Errorf("%s: expected unauthorized, got %v", tc.name, err)
		}
	}
}
