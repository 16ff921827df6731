package notify

import (
	"context"
	"log/slog"
)

// =============================================================================
// LogNotifier
// =============================================================================

// LogNotifier logs messages instead of sending them (for testing/debugging).
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs to the given logger.
// If logger is nil, uses the default slog logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

// SendText implements Notifier.
func (n *LogNotifier) SendText(ctx context.Context, text string) (any, error) {
	n.Logger.InfoContext(ctx, "notification text", "text", text)
	return map[string]any{"logged": true}, nil
}

// SendCard implements Notifier.
func (n *LogNotifier) SendCard(ctx context.Context, title, content, color string, actions []Action) (any, error) {
	n.Logger.InfoContext(ctx, "notification card",
		"title", title,
		"content", content,
		"color", color,
		"actions", len(actions),
	)
	return map[string]any{"logged": true}, nil
}
