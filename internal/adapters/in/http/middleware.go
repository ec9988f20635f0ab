package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/ports"
)

const actorContextKey = "intermediaryID"

// BearerAuth verifies the Authorization header with the token signer and
// stores the authenticated intermediary ID in the request context.
func BearerAuth(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			intermediaryID, err := signer.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, intermediaryID)
			return next(ctx)
		}
	}
}

// actorID returns the authenticated intermediary stored by BearerAuth.
func actorID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(actorContextKey).(kernel.UUID)
	return id, ok
}
