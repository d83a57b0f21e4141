package api

import (
	"context"

	"github.com/celestialmindworks/site-backend/auth"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the request's principal to the context
func ctxWithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// principalFromCtx retrieves the principal from the context; a request that
// never went through the identity middleware is anonymous.
func principalFromCtx(ctx context.Context) auth.Principal {
	if p, ok := ctx.Value(principalKey).(auth.Principal); ok {
		return p
	}
	return auth.Anonymous()
}
