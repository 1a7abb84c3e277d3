package worker

import (
	"context"
	"testing"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/service"
	mock_service "github.com/csv-challenge/backend/internal/service/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendRegistrationConfirmationEmail(t *testing.T) {
	teams := new(mock_service.Teams)
	emails := new(mock_service.Emails)
	w := NewWorkers(Deps{Services: &service.Services{Teams: teams, Emails: emails}})

	team := &domain.TeamRegistration{
		TeamName:     "A",
		Organization: "Org",
		Email:        "a@x.com",
		Username:     "a1",
		IsVerified:   true,
		Members: []domain.TeamMember{
			{Name: "Alice", IsLeader: true},
			{Name: "Bob"},
		},
	}
	teams.On("GetVerifiedByUsername", mock.Anything, "a1").Return(team, nil).Once()
	emails.On("SendRegistrationConfirmationEmail", mock.Anything, service.ConfirmationEmailInput{
		Email:        "a@x.com",
		TeamName:     "A",
		Username:     "a1",
		Organization: "Org",
		Members: []service.MemberInput{
			{Name: "Alice", IsLeader: true},
			{Name: "Bob"},
		},
	}).Return(nil).Once()

	require.NoError(t, w.EmailSender.SendRegistrationConfirmationEmail(context.Background(), "a1"))
	teams.AssertExpectations(t)
	emails.AssertExpectations(t)
}

func TestSendRegistrationConfirmationEmailUnknownTeam(t *testing.T) {
	teams := new(mock_service.Teams)
	emails := new(mock_service.Emails)
	w := NewWorkers(Deps{Services: &service.Services{Teams: teams, Emails: emails}})

	teams.On("GetVerifiedByUsername", mock.Anything, "ghost").Return(nil, service.ErrTeamNotFoundOrUnverified).Once()

	err := w.EmailSender.SendRegistrationConfirmationEmail(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrTeamNotFoundOrUnverified)
	emails.AssertNotCalled(t, "SendRegistrationConfirmationEmail", mock.Anything, mock.Anything)
}
