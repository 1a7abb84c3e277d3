package mock_service

import (
	"context"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type Teams struct {
	mock.Mock
}

func (m *Teams) Register(ctx context.Context, input service.RegisterInput) (*domain.TeamRegistration, error) {
	args := m.Called(ctx, input)
	team, _ := args.Get(0).(*domain.TeamRegistration)

	return team, args.Error(1)
}

func (m *Teams) Verify(ctx context.Context, email string, code string) error {
	args := m.Called(ctx, email, code)

	return args.Error(0)
}

func (m *Teams) Login(ctx context.Context, login string, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, login, password)
	result, _ := args.Get(0).(*service.LoginResult)

	return result, args.Error(1)
}

func (m *Teams) GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]domain.TeamRegistration)

	return teams, args.Error(1)
}

func (m *Teams) GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	args := m.Called(ctx, username)
	team, _ := args.Get(0).(*domain.TeamRegistration)

	return team, args.Error(1)
}

func (m *Teams) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)

	return args.Error(0)
}

type Submissions struct {
	mock.Mock
}

func (m *Submissions) Create(ctx context.Context, input service.SubmissionInput) (*domain.Submission, error) {
	args := m.Called(ctx, input)
	submission, _ := args.Get(0).(*domain.Submission)

	return submission, args.Error(1)
}

func (m *Submissions) GetByUsername(ctx context.Context, username string) ([]domain.Submission, error) {
	args := m.Called(ctx, username)
	submissions, _ := args.Get(0).([]domain.Submission)

	return submissions, args.Error(1)
}

func (m *Submissions) GetAll(ctx context.Context) ([]domain.Submission, error) {
	args := m.Called(ctx)
	submissions, _ := args.Get(0).([]domain.Submission)

	return submissions, args.Error(1)
}

type Emails struct {
	mock.Mock
}

func (m *Emails) SendUserVerificationEmail(ctx context.Context, input service.VerificationEmailInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *Emails) SendRegistrationConfirmationEmail(ctx context.Context, input service.ConfirmationEmailInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}
