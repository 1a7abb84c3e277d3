package service

import (
	"context"
	"fmt"
	"time"

	"github.com/csv-challenge/backend/internal/config"
	emailProvider "github.com/csv-challenge/backend/pkg/email"
	"github.com/csv-challenge/backend/pkg/logger"
	"github.com/csv-challenge/backend/templates"

	"go.uber.org/zap"
)

type EmailService struct {
	sender  emailProvider.Sender
	config  config.EmailConfig
	codeTTL time.Duration
	enabled bool
}

func newEmailsService(sender emailProvider.Sender, config config.EmailConfig, codeTTL time.Duration) *EmailService {
	return &EmailService{
		enabled: config.Enabled,
		sender:  sender,
		config:  config,
		codeTTL: codeTTL,
	}
}

type verificationEmailInput struct {
	SystemName       string
	ContactEmail     string
	VerificationCode string
	ValidMinutes     int
}

type VerificationEmailInput struct {
	Email            string
	VerificationCode string
}

// SendUserVerificationEmail blocks until the code is handed to the mail server.
// With email disabled the code is logged instead.
func (s *EmailService) SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) error {
	if !s.enabled {
		logger.Info("email disabled, verification code not sent",
			zap.String("email", input.Email),
			zap.String("code", input.VerificationCode),
		)
		return nil
	}

	templateInput := verificationEmailInput{
		SystemName:       s.config.SystemName,
		ContactEmail:     s.config.ContactEmail,
		VerificationCode: input.VerificationCode,
		ValidMinutes:     int(s.codeTTL / time.Minute),
	}
	sendInput := emailProvider.SendEmailInput{Subject: s.config.Subjects.Verification, To: input.Email}

	if err := sendInput.GenerateBodyFromHTML(templates.FS, s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	logger.Info("verification email sent", zap.String("email", input.Email))

	return nil
}

type ConfirmationEmailInput struct {
	Email        string
	TeamName     string
	Username     string
	Organization string
	Members      []MemberInput
}

type confirmationEmailInput struct {
	ConfirmationEmailInput
	SystemName   string
	ContactEmail string
}

func (s *EmailService) SendRegistrationConfirmationEmail(ctx context.Context, input ConfirmationEmailInput) error {
	if !s.enabled {
		logger.Info("email disabled, confirmation not sent", zap.String("email", input.Email))
		return nil
	}

	templateInput := confirmationEmailInput{
		ConfirmationEmailInput: input,
		SystemName:             s.config.SystemName,
		ContactEmail:           s.config.ContactEmail,
	}
	sendInput := emailProvider.SendEmailInput{Subject: s.config.Subjects.Confirmation, To: input.Email}

	if err := sendInput.GenerateBodyFromHTML(templates.FS, s.config.Templates.Confirmation, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	logger.Info("confirmation email sent", zap.String("email", input.Email))

	return nil
}
