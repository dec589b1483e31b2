// Package logsink adapts a *slog.Logger to the callback taken by
// maybe.Maybe.LogErrors.
package logsink
