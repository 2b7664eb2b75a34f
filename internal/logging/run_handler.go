package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// WithRunID returns a logger whose records all carry runID at the top level,
// outside any group opened later. An empty runID generates a fresh UUID.
func WithRunID(logger *slog.Logger, runID string) (*slog.Logger, string) {
	if runID == "" {
		runID = uuid.NewString()
	}
	if logger == nil {
		return NewNop(), runID
	}
	handler := logger.Handler().WithAttrs([]slog.Attr{slog.String(FieldRunID, runID)})
	return slog.New(handler), runID
}
