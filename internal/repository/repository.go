package repository

import (
	"context"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Teams             Teams
	VerificationCodes VerificationCodes
	Submissions       Submissions
	Transactor        Transactor
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Teams:             newTeamRepository(db),
		VerificationCodes: newVerificationCodeRepository(db),
		Submissions:       newSubmissionRepository(db),
		Transactor:        newTransactor(db),
	}
}

type Teams interface {
	CreateWithMembers(ctx context.Context, team *domain.TeamRegistration) error
	GetByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error)
	GetByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error)
	GetByLogin(ctx context.Context, login string) (*domain.TeamRegistration, error)
	GetUnverifiedByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error)
	GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error)
	GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error)
	MarkVerifiedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
	DeleteByUsername(ctx context.Context, username string) error
}

type VerificationCodes interface {
	Replace(ctx context.Context, code *domain.VerificationCode) error
	GetUnused(ctx context.Context, email string, code string) (*domain.VerificationCode, error)
	MarkUsedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
}

type Submissions interface {
	Create(ctx context.Context, submission *domain.Submission) error
	GetByUsername(ctx context.Context, username string) ([]domain.Submission, error)
	GetAll(ctx context.Context) ([]domain.Submission, error)
}

// Transactor runs fn inside a single database transaction, committing only when fn succeeds.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}
