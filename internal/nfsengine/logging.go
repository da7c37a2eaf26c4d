package nfsengine

import (
	"context"

	"github.com/go-kit/log"
)

type loggerKey struct{}
type configKey struct{}

// withLogger attaches a logger to ctx so handlers can log without carrying
// a Router reference of their own.
func withLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFrom retrieves the logger attached by withLogger, or a no-op logger
// if none was attached (e.g. in unit tests that call handlers directly).
func loggerFrom(ctx context.Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok && l != nil {
		return l
	}
	return log.NewNopLogger()
}

// withConfig attaches the Router's Config to ctx for the same reason
// withLogger does: handlers are plain functions, not Router methods.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom retrieves the Config attached by withConfig, or a default
// Config (case-sensitive, no request timeout) if none was attached.
func configFrom(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey{}).(Config); ok {
		return c
	}
	return Config{CaseSensitive: true}
}
