package notify

import (
	"context"
	"log/slog"

	"github.com/qaspilab/qaspilab/internal/model"
)

// LogNotifier writes ideas to the log. It stands in when no chat is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing to logger, or slog.Default if nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string {
	return "log"
}

func (n *LogNotifier) Notify(ctx context.Context, idea *model.Idea) error {
	n.logger.InfoContext(ctx, "new idea",
		"idea_id", idea.ID,
		"name", idea.Name,
		"contact", idea.ContactFormatted,
		"budget", idea.BudgetLabel,
		"description", idea.Description,
		"surface", idea.Surface,
	)
	return nil
}
