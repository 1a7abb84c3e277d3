package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendConfirmationEmailTask(t *testing.T) {
	task, err := NewSendConfirmationEmailTask("a1")
	require.NoError(t, err)

	assert.Equal(t, SendConfirmationEmailTaskName, task.Type())

	var payload SendConfirmationEmail
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "a1", payload.Username)
}
