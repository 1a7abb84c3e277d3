package worker

import (
	"context"
	"fmt"

	"github.com/csv-challenge/backend/internal/service"
)

type emailSender struct {
	teams  service.Teams
	emails service.Emails
}

func newEmailSender(
	teams service.Teams,
	emails service.Emails,
) *emailSender {
	return &emailSender{
		teams:  teams,
		emails: emails,
	}
}

func (s *emailSender) SendRegistrationConfirmationEmail(ctx context.Context, username string) error {
	team, err := s.teams.GetVerifiedByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("get verified team failed: %w", err)
	}

	members := make([]service.MemberInput, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, service.MemberInput{Name: m.Name, IsLeader: m.IsLeader})
	}

	input := service.ConfirmationEmailInput{
		Email:        team.Email,
		TeamName:     team.TeamName,
		Username:     team.Username,
		Organization: team.Organization,
		Members:      members,
	}

	if err := s.emails.SendRegistrationConfirmationEmail(ctx, input); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
