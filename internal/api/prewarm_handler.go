package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"devcanvas/internal/api/middleware"
	"devcanvas/internal/tasks"
)

// PrewarmHandler enqueues cache prewarm tasks.
type PrewarmHandler struct {
	asynqClient *asynq.Client
}

// NewPrewarmHandler constructs a PrewarmHandler.
func NewPrewarmHandler(asynqClient *asynq.Client) *PrewarmHandler {
	return &PrewarmHandler{asynqClient: asynqClient}
}

// Prewarm enqueues a background refresh of the GitHub cache for a username
// and returns 202 with the task id.
func (h *PrewarmHandler) Prewarm(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)
	username := c.Param("username")

	task, err := tasks.NewPortfolioPrewarmTask(username, middleware.GetCorrelationID(c))
	if err != nil {
		logger.Error("build prewarm task", slog.Any("error", err))
		Internal(c, "failed to build task")
		return
	}

	info, err := h.asynqClient.EnqueueContext(c.Request.Context(), task)
	if err != nil {
		logger.Error("enqueue prewarm task", slog.Any("error", err))
		Internal(c, "failed to enqueue task")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"task_id": info.ID, "queue": info.Queue})
}
