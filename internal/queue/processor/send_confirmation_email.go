package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/csv-challenge/backend/internal/queue/task"
	"github.com/csv-challenge/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendConfirmationEmailProcessor struct {
	workers *worker.Workers
}

func NewSendConfirmationEmailProcessor(workers *worker.Workers) *sendConfirmationEmailProcessor {
	return &sendConfirmationEmailProcessor{
		workers: workers,
	}
}

func (p *sendConfirmationEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendConfirmationEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send confirmation email task json unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	if err = p.workers.EmailSender.SendRegistrationConfirmationEmail(ctx, data.Username); err != nil {
		return fmt.Errorf("send registration confirmation email failed: %w", err)
	}

	return nil
}
