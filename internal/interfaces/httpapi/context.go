package httpapi

import "context"

type contextKey string

const actorContextKey contextKey = "actor_user_id"

func withActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorContextKey, userID)
}

func actorFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(actorContextKey).(string)
	return userID, ok && userID != ""
}
