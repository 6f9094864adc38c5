package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cratedoc"
)

// Ensure LoggingBuilder implements cratedoc.Builder.
var _ cratedoc.Builder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a Builder with debug logging.
type LoggingBuilder struct {
	next   cratedoc.Builder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next cratedoc.Builder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the operation.
func (b *LoggingBuilder) Build(ctx context.Context, crate string) (docRoot string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("local doc build",
			"crate", crate,
			"doc_root", docRoot,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Build(ctx, crate)
}

// Close delegates to the wrapped builder.
func (b *LoggingBuilder) Close() error {
	return b.next.Close()
}
