package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/auth"
)

func TestBearerAuth(t *testing.T) {
	signer := auth.NewJWTSigner("test-secret", time.Hour)
	intermediaryID := kernel.NewUUID()

	token, err := signer.Sign(intermediaryID)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		actor, ok := actorID(ctx)
		require.True(t, ok)
		return ctx.String(http.StatusOK, actor.String())
	}, BearerAuth(signer))

	t.Run("should admit a valid token and expose the actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, intermediaryID.String(), rec.Body.String())
	})

	t.Run("should reject a missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token+"x")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
