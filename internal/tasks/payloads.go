// Package tasks defines asynq task types and payloads shared by the API and
// the worker.
package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypePortfolioPrewarm populates the GitHub cache for a username ahead of
// the first page view.
const TypePortfolioPrewarm = "portfolio:prewarm"

// PortfolioPrewarmPayload is the payload for TypePortfolioPrewarm.
type PortfolioPrewarmPayload struct {
	Username      string `json:"username"`
	CorrelationID string `json:"correlation_id"`
}

// NewPortfolioPrewarmTask builds a prewarm task for username.
func NewPortfolioPrewarmTask(username, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PortfolioPrewarmPayload{
		Username:      username,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal prewarm payload: %w", err)
	}
	return asynq.NewTask(TypePortfolioPrewarm, payload), nil
}
