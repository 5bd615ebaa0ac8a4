package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/config"
	"AI-TRAVEL-PLANNER_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "user@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "user@example.com", testJWTConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour})
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}

	token, err := GenerateToken(uuid.New(), "user@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := GenerateToken(userID, "user@example.com", cfg)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	}, cfg)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
