package http

import (
	"errors"
	"net/http"
	"strings"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "actor"

// ErrInvalidToken is returned for a bearer token that fails verification or names no actor.
var ErrInvalidToken = errors.New("invalid token")

// ActorConfig configures ActorMiddleware.
type ActorConfig struct {
	// Skipper selects requests served without an actor, e.g. health checks.
	Skipper middleware.Skipper
	// SigningKey verifies HS256 tokens.
	SigningKey []byte
}

// ActorMiddleware authenticates the caller from "Authorization: Bearer <jwt>". The token's
// subject is the actor's UUID; handlers read it with actorFrom.
func ActorMiddleware(cfg ActorConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cfg.Skipper(ctx) {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return unauthenticated(ctx, "Authorization header required")
			}

			actor, err := ParseActor(token, cfg.SigningKey)
			if err != nil {
				return unauthenticated(ctx, "Invalid token")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// ParseActor verifies token and returns its subject.
func ParseActor(token string, signingKey []byte) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return kernel.UUID{}, ErrInvalidToken
	}

	actor, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, ErrInvalidToken
	}
	return actor, nil
}

// actorFrom returns the authenticated actor, or the zero UUID, which every command and query
// constructor rejects.
func actorFrom(ctx echo.Context) kernel.UUID {
	actor, _ := ctx.Get(actorContextKey).(kernel.UUID)
	return actor
}

func unauthenticated(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
