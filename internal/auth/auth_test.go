package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/pdfshorts/backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-long-enough-secret-for-signing-tests"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")
		assert.Panics(t, func() { auth.Init() })
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		assert.NotPanics(t, func() { auth.Init() })
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT("user-123", 5*time.Minute)
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT("user-123", -time.Minute)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.ClaimsFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "listener", claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
	protected := auth.AuthMiddleware(next)

	t.Run("NoHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT("listener", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
