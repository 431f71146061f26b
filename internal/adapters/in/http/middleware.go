package http

import (
	"net/http"
	"strings"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// authenticated verifies the bearer token and stores its claims on the
// request context. Requests without a valid, unrevoked access token get 401.
func (s *Server) authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, ok := bearerToken(ctx)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		claims, err := s.auth.Authenticate(ctx.Request().Context(), token)
		if err != nil {
			return s.respondError(ctx, err)
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// allow rejects authenticated requests whose actor kind is not in the
// allow-list.
func (s *Server) allow(kinds ...account.Kind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := claimsFrom(ctx)
			if err != nil {
				return s.respondError(ctx, err)
			}

			kind, err := claims.AccountKind()
			if err != nil || !kind.OneOf(kinds...) {
				return ctx.JSON(http.StatusForbidden, errorResponse{
					Code:    http.StatusForbidden,
					Message: "Operation not permitted for this account",
				})
			}

			return next(ctx)
		}
	}
}

func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func claimsFrom(ctx echo.Context) (*auth.Claims, error) {
	claims, ok := ctx.Get(claimsContextKey).(*auth.Claims)
	if !ok {
		return nil, auth.ErrTokenInvalid
	}
	return claims, nil
}

// actorID resolves the authenticated account id from the request context.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	return claims.AccountID()
}
