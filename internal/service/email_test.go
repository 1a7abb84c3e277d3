package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/csv-challenge/backend/pkg/email"
	mock_email "github.com/csv-challenge/backend/pkg/email/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendUserVerificationEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	svc := newEmailsService(sender, testConfig.Email, testConfig.Auth.VerificationCodeTTL)

	var sent email.SendEmailInput
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(email.SendEmailInput)
	}).Return(nil).Once()

	err := svc.SendUserVerificationEmail(context.Background(), VerificationEmailInput{Email: "a@x.com", VerificationCode: "123456"})
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", sent.To)
	assert.Equal(t, "Verification code", sent.Subject)
	assert.Contains(t, sent.Body, "123456")
	assert.Contains(t, sent.Body, "10")
	assert.Contains(t, sent.Body, "CSV Challenge")
}

func TestSendUserVerificationEmailSenderError(t *testing.T) {
	sender := new(mock_email.EmailSender)
	svc := newEmailsService(sender, testConfig.Email, testConfig.Auth.VerificationCodeTTL)

	sendErr := errors.New("dial tcp: timeout")
	sender.On("Send", mock.Anything).Return(sendErr).Once()

	err := svc.SendUserVerificationEmail(context.Background(), VerificationEmailInput{Email: "a@x.com", VerificationCode: "123456"})
	assert.ErrorIs(t, err, sendErr)
}

func TestSendRegistrationConfirmationEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	svc := newEmailsService(sender, testConfig.Email, testConfig.Auth.VerificationCodeTTL)

	sender.On("Send", mock.MatchedBy(func(in email.SendEmailInput) bool {
		return in.To == "a@x.com" &&
			in.Subject == "Registration confirmed" &&
			strings.Contains(in.Body, "Team Rocket") &&
			strings.Contains(in.Body, "Alice") &&
			strings.Contains(in.Body, "Bob")
	})).Return(nil).Once()

	err := svc.SendRegistrationConfirmationEmail(context.Background(), ConfirmationEmailInput{
		Email:        "a@x.com",
		TeamName:     "Team Rocket",
		Username:     "a1",
		Organization: "Org",
		Members:      []MemberInput{{Name: "Alice", IsLeader: true}, {Name: "Bob"}},
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestEmailsDisabled(t *testing.T) {
	sender := new(mock_email.EmailSender)
	cfg := testConfig.Email
	cfg.Enabled = false
	svc := newEmailsService(sender, cfg, testConfig.Auth.VerificationCodeTTL)

	require.NoError(t, svc.SendUserVerificationEmail(context.Background(), VerificationEmailInput{Email: "a@x.com", VerificationCode: "123456"}))
	require.NoError(t, svc.SendRegistrationConfirmationEmail(context.Background(), ConfirmationEmailInput{Email: "a@x.com"}))

	sender.AssertNotCalled(t, "Send", mock.Anything)
}
