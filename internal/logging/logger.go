// Package logging defines the structured logger used across the console.
// The only implementation wraps log/slog; components depend on the
// interface so tests can swap in a buffer-backed logger.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key–value pairs:
//
//	log.Info(ctx, "profile saved", "user_id", id, "fields", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
