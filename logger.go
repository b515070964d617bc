package responsez

import (
	"context"
	"log/slog"
)

// Logger logs every Result passing through it and forwards it unchanged.
// Successful results are logged at Debug, errors at Warn. Operators in this
// package never log on their own; insert a Logger where visibility is needed.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Logger[T any] struct {
	name   string
	logger *slog.Logger
}

// NewLogger creates a pass-through logging stage. A nil logger uses
// slog.Default().
//
// Example:
//
//	logged := responsez.NewLogger[responsez.Response](slog.Default()).
//		WithName("after-fetch").
//		Process(ctx, responses)
func NewLogger[T any](logger *slog.Logger) *Logger[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger[T]{
		name:   "logger",
		logger: logger,
	}
}

// WithName sets a custom name for this processor.
// The name is attached to every log record as "stage".
func (l *Logger[T]) WithName(name string) *Logger[T] {
	l.name = name
	return l
}

// Process logs each item and passes it through.
func (l *Logger[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for {
			var item Result[T]
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				item = r
			}

			l.log(ctx, item)

			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (l *Logger[T]) log(ctx context.Context, item Result[T]) {
	attrs := []slog.Attr{slog.String("stage", l.name)}
	for _, key := range []string{MetadataMethod, MetadataURL, MetadataStatusCode} {
		if v, ok := item.GetMetadata(key); ok {
			attrs = append(attrs, slog.Any(key, v))
		}
	}

	if item.IsError() {
		se := item.Error()
		attrs = append(attrs,
			slog.String("processor", se.ProcessorName),
			slog.Any("error", se.Err),
		)
		l.logger.LogAttrs(ctx, slog.LevelWarn, "stream error", attrs...)
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelDebug, "stream item", attrs...)
}

// Name returns the processor name for debugging and monitoring.
func (l *Logger[T]) Name() string {
	return l.name
}
