package jobs

import (
	"context"
	"log/slog"
)

// Event is a decoded outbox job handed to a Notifier.
type Event struct {
	JobID  int64
	Topic  string
	Fields map[string]any
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// LogNotifier emits each event as a structured log line. It stands in for
// email/SMS delivery.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, ev Event) error {
	attrs := []slog.Attr{
		slog.Int64("job_id", ev.JobID),
		slog.String("topic", ev.Topic),
	}
	for k, v := range ev.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	n.logger.LogAttrs(ctx, slog.LevelInfo, "notification", attrs...)
	return nil
}
