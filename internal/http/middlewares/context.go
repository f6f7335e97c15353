package middlewares

import (
	"context"

	"github.com/dropDatabas3/teamspace/internal/jwt"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	claimsKey
	userIDKey
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID retorna el request ID del contexto, o "" si no hay.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithClaims guarda las claims del token en el contexto.
func WithClaims(ctx context.Context, cl *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, cl)
}

// GetClaims retorna las claims del contexto, o nil si no hay.
func GetClaims(ctx context.Context) *jwt.Claims {
	if v, ok := ctx.Value(claimsKey).(*jwt.Claims); ok {
		return v
	}
	return nil
}

// WithUserID guarda el user ID autenticado en el contexto.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retorna el user ID autenticado, o "" si no hay.
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
