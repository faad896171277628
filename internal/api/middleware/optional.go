package middleware

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// OptionalAuth injects the account identity when a valid bearer token is
// supplied but lets anonymous requests through untouched. Used on routes
// that are open to anyone yet behave differently for authenticated callers,
// such as registration's admin-role gate.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}
			if typ, _ := claims["typ"].(string); typ != "access" {
				return next(c)
			}

			sub, _ := claims["sub"].(string)
			if accountID, err := strconv.ParseInt(sub, 10, 64); err == nil && accountID > 0 {
				c.Set(CtxAccountID, accountID)
				c.Set(CtxUsername, claims["username"])
			}
			return next(c)
		}
	}
}
