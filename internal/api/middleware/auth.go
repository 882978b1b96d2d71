package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenChecker reports whether a token id has been revoked by logout.
type TokenChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth validates the JWT, rejects revoked tokens, and injects the verified
// claims into context.
func Auth(jwtSecret string, revoked TokenChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, ok := claims["user_id"].(float64)
			if !ok || userID <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}

			tokenID, _ := claims["jti"].(string)
			if tokenID != "" && revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), tokenID)
				if err == nil && isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
				// A revocation-store failure must not lock every user out;
				// the token still carries a valid signature.
			}

			c.Set("user_id", int64(userID))
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("token_id", tokenID)
			if exp, ok := claims["exp"].(float64); ok {
				c.Set("token_expires", time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}
