// Package worker contains the asynq task handlers.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"devcanvas/internal/github"
	"devcanvas/internal/service"
	"devcanvas/internal/tasks"
)

// PrewarmHandler processes portfolio prewarm tasks.
type PrewarmHandler struct {
	service *service.Service
	logger  *slog.Logger
}

// NewPrewarmHandler creates a handler backed by the portfolio service.
func NewPrewarmHandler(svc *service.Service, logger *slog.Logger) *PrewarmHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrewarmHandler{service: svc, logger: logger}
}

// ProcessTask refreshes the cached GitHub data for the payload's username.
// An unknown username is terminal and skips retries; transient fetch errors
// are retried by asynq.
func (h *PrewarmHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.PortfolioPrewarmPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal prewarm payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := h.logger.With(
		slog.String("task", tasks.TypePortfolioPrewarm),
		slog.String("username", payload.Username),
		slog.String("correlation_id", payload.CorrelationID),
	)

	view, err := h.service.Refresh(ctx, payload.Username)
	if err != nil {
		var notFound *github.NotFoundError
		if errors.As(err, &notFound) {
			logger.Warn("prewarm target does not exist, skipping")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		logger.Error("prewarm failed", slog.Any("error", err))
		return err
	}

	logger.Info("prewarm completed",
		slog.Int("repos", len(view.Repos)),
		slog.Int("skills", len(view.Skills)),
	)
	return nil
}
