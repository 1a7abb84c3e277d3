package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendConfirmationEmailTaskName  = "sendConfirmationEmailTask"
	SendConfirmationEmailQueueName = "sendEmailQueue"
)

// SendConfirmationEmail carries only the username; the processor loads the team when it runs.
type SendConfirmationEmail struct {
	Username string `json:"username"`
}

func NewSendConfirmationEmailTask(username string) (*asynq.Task, error) {
	data := SendConfirmationEmail{Username: username}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendConfirmationEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendConfirmationEmailQueueName),
	), nil
}
