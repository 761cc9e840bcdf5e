// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

func testManager() *JWTManager {
	return NewJWTManager(&config.Config{
		JWT: config.JWTConfig{
			Secret: "test-secret-that-is-at-least-32-characters",
			Issuer: "pedefacil-auth",
		},
	})
}

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminClaims(issuer string) *Claims {
	now := time.Now().UTC()
	return &Claims{
		Email:   "admin@loja.com",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
}

func TestValidateAdminTokenAcceptsValidToken(t *testing.T) {
	m := testManager()
	tokenString := signToken(t, "test-secret-that-is-at-least-32-characters", adminClaims("pedefacil-auth"))

	claims, err := m.ValidateAdminToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, "admin@loja.com", claims.Email)
	require.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := testManager()
	tokenString := signToken(t, "another-secret-that-is-32-characters-long", adminClaims("pedefacil-auth"))

	_, err := m.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	m := testManager()
	tokenString := signToken(t, "test-secret-that-is-at-least-32-characters", adminClaims("someone-else"))

	_, err := m.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestValidateAdminTokenRejectsNonAdmin(t *testing.T) {
	m := testManager()
	claims := adminClaims("pedefacil-auth")
	claims.IsAdmin = false
	tokenString := signToken(t, "test-secret-that-is-at-least-32-characters", claims)

	_, err := m.ValidateAdminToken(tokenString)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	m := testManager()
	claims := adminClaims("pedefacil-auth")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().UTC().Add(-time.Hour))
	tokenString := signToken(t, "test-secret-that-is-at-least-32-characters", claims)

	_, err := m.ValidateToken(tokenString)
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	require.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	require.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	require.Empty(t, ExtractTokenFromHeader(""))
}
