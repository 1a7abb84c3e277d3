package mock_repository

import (
	"context"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type Teams struct {
	mock.Mock
}

func (m *Teams) CreateWithMembers(ctx context.Context, team *domain.TeamRegistration) error {
	args := m.Called(ctx, team)

	return args.Error(0)
}

func (m *Teams) team(args mock.Arguments) (*domain.TeamRegistration, error) {
	team, _ := args.Get(0).(*domain.TeamRegistration)

	return team, args.Error(1)
}

func (m *Teams) GetByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	return m.team(m.Called(ctx, username))
}

func (m *Teams) GetByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error) {
	return m.team(m.Called(ctx, email))
}

func (m *Teams) GetByLogin(ctx context.Context, login string) (*domain.TeamRegistration, error) {
	return m.team(m.Called(ctx, login))
}

func (m *Teams) GetUnverifiedByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error) {
	return m.team(m.Called(ctx, email))
}

func (m *Teams) GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	return m.team(m.Called(ctx, username))
}

func (m *Teams) GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]domain.TeamRegistration)

	return teams, args.Error(1)
}

func (m *Teams) MarkVerifiedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)

	return args.Error(0)
}

func (m *Teams) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)

	return args.Error(0)
}

type VerificationCodes struct {
	mock.Mock
}

func (m *VerificationCodes) Replace(ctx context.Context, code *domain.VerificationCode) error {
	args := m.Called(ctx, code)

	return args.Error(0)
}

func (m *VerificationCodes) GetUnused(ctx context.Context, email string, code string) (*domain.VerificationCode, error) {
	args := m.Called(ctx, email, code)
	verificationCode, _ := args.Get(0).(*domain.VerificationCode)

	return verificationCode, args.Error(1)
}

func (m *VerificationCodes) MarkUsedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)

	return args.Error(0)
}

type Submissions struct {
	mock.Mock
}

func (m *Submissions) Create(ctx context.Context, submission *domain.Submission) error {
	args := m.Called(ctx, submission)

	return args.Error(0)
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

// Transactor runs fn with a nil transaction; repository mocks receive the nil *sqlx.Tx.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) WithinTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}

	return fn(nil)
}
