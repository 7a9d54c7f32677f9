package telemetry

import "context"

// turnIDKey is the context key type for the conversational turn ID.
type turnIDKey struct{}

// WithTurnID returns a child context carrying the turn ID, so every event
// emitted while serving one user turn can be correlated.
func WithTurnID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, turnIDKey{}, id)
}

// TurnIDFromContext returns the turn ID from ctx. The second return is false
// when no non-empty ID is present.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(turnIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
