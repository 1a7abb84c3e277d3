package service

import (
	"context"
	"time"

	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/queue/client"
	"github.com/csv-challenge/backend/internal/repository"
	"github.com/csv-challenge/backend/pkg/auth"
	emailProvider "github.com/csv-challenge/backend/pkg/email"
	"github.com/csv-challenge/backend/pkg/otp"
)

type Services struct {
	Teams       Teams
	Submissions Submissions
	Emails      Emails
}

type Deps struct {
	Config       *config.Config
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	EmailSender  emailProvider.Sender
	Queue        client.Enqueuer
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	emails := newEmailsService(deps.EmailSender, deps.Config.Email, deps.Config.Auth.VerificationCodeTTL)

	return &Services{
		Teams: newTeamService(
			deps.Repos.Teams,
			deps.Repos.VerificationCodes,
			deps.Repos.Transactor,
			emails,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.Queue,
			deps.Config.Auth,
		),
		Submissions: newSubmissionService(deps.Repos.Submissions, deps.Repos.Teams),
		Emails:      emails,
	}
}

type Teams interface {
	Register(ctx context.Context, input RegisterInput) (*domain.TeamRegistration, error)
	Verify(ctx context.Context, email string, code string) error
	Login(ctx context.Context, login string, password string) (*LoginResult, error)
	GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error)
	GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type Submissions interface {
	Create(ctx context.Context, input SubmissionInput) (*domain.Submission, error)
	GetByUsername(ctx context.Context, username string) ([]domain.Submission, error)
	GetAll(ctx context.Context) ([]domain.Submission, error)
}

type Emails interface {
	SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) error
	SendRegistrationConfirmationEmail(ctx context.Context, input ConfirmationEmailInput) error
}

type RegisterInput struct {
	TeamName     string
	Organization string
	OrgAddress   string
	Email        string
	Username     string
	Password     string
	Members      []MemberInput
}

type MemberInput struct {
	Name     string
	IsLeader bool
}

type LoginResult struct {
	Token    string
	TokenTTL time.Duration
	Team     *domain.TeamRegistration
}

type SubmissionInput struct {
	Username    string
	Title       string
	URL         string
	Description string
}
