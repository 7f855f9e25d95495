package taskpool

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger used throughout a Pool, at the levels
// {error, warn, info, debug, trace}. It is a thin alias over
// logiface.Logger, parameterised by stumpy's JSON event type, the same
// "model" logger the logiface ecosystem itself uses as its reference
// implementation.
type Logger = *logiface.Logger[*stumpy.Event]

// PoolOption configures a Pool at construction time, via NewPool.
type PoolOption func(c *poolConfig)

type poolConfig struct {
	log Logger
}

// WithLogger overrides the Pool's Logger. A nil Pool option (or omitting
// WithLogger entirely) falls back to a stumpy-backed logger that discards
// its output, so that logging calls throughout the Pool are always safe
// to make unconditionally.
func WithLogger(log Logger) PoolOption {
	return func(c *poolConfig) {
		c.log = log
	}
}

// defaultLogger returns a stumpy-backed Logger writing to io.Discard,
// following the construction idiom of stumpy.L.New(stumpy.L.WithStumpy(...)).
func defaultLogger() Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(io.Discard),
		),
	)
}
