package logging

import "context"

type requestIDKey struct{}

// WithRequestID returns ctx carrying the correlation id sent to the backend.
// Both backends add it to every record logged with that ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDKey is the attribute name the id is logged under.
const RequestIDKey = "request_id"
