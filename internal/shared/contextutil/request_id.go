package contextutil

import "context"

// unexported key type so other packages cannot collide
type contextKey string

const requestIDKey contextKey = "request_id"

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
