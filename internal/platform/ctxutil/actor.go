package ctxutil

import (
	"context"

	types "github.com/yungbote/learnify-backend/internal/domain"
)

type actorKey struct{}

// WithActor stores the authenticated caller resolved by the auth middleware.
func WithActor(ctx context.Context, actor *types.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func GetActor(ctx context.Context) *types.Actor {
	if a, ok := ctx.Value(actorKey{}).(*types.Actor); ok {
		return a
	}
	return nil
}
