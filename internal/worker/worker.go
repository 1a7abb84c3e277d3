package worker

import (
	"context"

	"github.com/csv-challenge/backend/internal/service"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	Services *service.Services
}

type EmailSender interface {
	SendRegistrationConfirmationEmail(ctx context.Context, username string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.Services.Teams, deps.Services.Emails),
	}
}
