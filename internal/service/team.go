package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/queue/client"
	"github.com/csv-challenge/backend/internal/queue/task"
	"github.com/csv-challenge/backend/internal/repository"
	"github.com/csv-challenge/backend/pkg/auth"
	"github.com/csv-challenge/backend/pkg/logger"
	"github.com/csv-challenge/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type teamService struct {
	teamRepository repository.Teams
	codeRepository repository.VerificationCodes
	transactor     repository.Transactor
	emails         Emails
	tokenManager   auth.TokenManager
	otpGenerator   otp.Generator
	queue          client.Enqueuer
	authConfig     config.AuthConfig
	now            func() time.Time
}

func newTeamService(teamRepository repository.Teams,
	codeRepository repository.VerificationCodes,
	transactor repository.Transactor,
	emails Emails,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	queue client.Enqueuer,
	authConfig config.AuthConfig,
) *teamService {
	return &teamService{
		teamRepository: teamRepository,
		codeRepository: codeRepository,
		transactor:     transactor,
		emails:         emails,
		tokenManager:   tokenManager,
		otpGenerator:   otpGenerator,
		queue:          queue,
		authConfig:     authConfig,
		now:            time.Now,
	}
}

// Register stores an unverified team with its members, issues a verification code and mails it.
// When mailing fails the stored rows are kept and ErrEmailDelivery is returned.
func (s *teamService) Register(ctx context.Context, input RegisterInput) (*domain.TeamRegistration, error) {
	if err := s.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	teamID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate team id failed: %w", err)
	}

	team := &domain.TeamRegistration{
		ID:           teamID,
		TeamName:     input.TeamName,
		Organization: input.Organization,
		OrgAddress:   input.OrgAddress,
		Email:        input.Email,
		Username:     input.Username,
		Password:     input.Password,
		IsVerified:   false,
		Members:      make([]domain.TeamMember, 0, len(input.Members)),
	}
	for _, member := range input.Members {
		memberID, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate member id failed: %w", err)
		}
		team.Members = append(team.Members, domain.TeamMember{
			ID:       memberID,
			TeamID:   teamID,
			Name:     member.Name,
			IsLeader: member.IsLeader,
		})
	}

	if err := s.teamRepository.CreateWithMembers(ctx, team); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, s.duplicateReason(ctx, input.Username)
		}
		return nil, fmt.Errorf("create team failed: %w", err)
	}

	code, err := s.issueCode(ctx, team.Email)
	if err != nil {
		return nil, err
	}

	if err := s.emails.SendUserVerificationEmail(ctx, VerificationEmailInput{
		Email:            team.Email,
		VerificationCode: code.Code,
	}); err != nil {
		logger.Error("send verification email failed",
			zap.String("email", team.Email),
			zap.String("username", team.Username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	return team, nil
}

func (s *teamService) ensureAvailable(ctx context.Context, username string, email string) error {
	if _, err := s.teamRepository.GetByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get team by username failed: %w", err)
	}

	if _, err := s.teamRepository.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get team by email failed: %w", err)
	}

	return nil
}

// duplicateReason resolves which unique key a concurrent registration won.
func (s *teamService) duplicateReason(ctx context.Context, username string) error {
	if _, err := s.teamRepository.GetByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

func (s *teamService) issueCode(ctx context.Context, email string) (*domain.VerificationCode, error) {
	codeID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate verification code id failed: %w", err)
	}

	code := &domain.VerificationCode{
		ID:        codeID,
		Email:     email,
		Code:      s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength),
		ExpiresAt: s.now().Add(s.authConfig.VerificationCodeTTL),
	}

	if err := s.codeRepository.Replace(ctx, code); err != nil {
		return nil, fmt.Errorf("store verification code failed: %w", err)
	}

	return code, nil
}

// Verify consumes the code and marks the team verified in one transaction.
func (s *teamService) Verify(ctx context.Context, email string, code string) error {
	verificationCode, err := s.codeRepository.GetUnused(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInvalidVerificationCode
		}
		return fmt.Errorf("get verification code failed: %w", err)
	}

	if verificationCode.Expired(s.now()) {
		return ErrVerificationCodeExpired
	}

	team, err := s.teamRepository.GetUnverifiedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUnverifiedTeamNotFound
		}
		return fmt.Errorf("get unverified team failed: %w", err)
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.codeRepository.MarkUsedWithTx(ctx, tx, verificationCode.ID); err != nil {
			if errors.Is(err, domain.ErrNoRowsAffected) {
				return ErrInvalidVerificationCode
			}
			return fmt.Errorf("mark code used failed: %w", err)
		}

		if err := s.teamRepository.MarkVerifiedWithTx(ctx, tx, team.ID); err != nil {
			if errors.Is(err, domain.ErrNoRowsAffected) {
				return ErrUnverifiedTeamNotFound
			}
			return fmt.Errorf("mark team verified failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.enqueueConfirmation(ctx, team.Username)

	return nil
}

func (s *teamService) enqueueConfirmation(ctx context.Context, username string) {
	if s.queue == nil {
		return
	}

	t, err := task.NewSendConfirmationEmailTask(username)
	if err != nil {
		logger.Error("build confirmation email task failed", zap.String("username", username), zap.Error(err))
		return
	}

	if _, err := s.queue.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue confirmation email failed", zap.String("username", username), zap.Error(err))
	}
}

// Login accepts either the username or the email as login. The returned token is not checked by any endpoint.
func (s *teamService) Login(ctx context.Context, login string, password string) (*LoginResult, error) {
	team, err := s.teamRepository.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get team by login failed: %w", err)
	}

	if !team.IsVerified {
		return nil, ErrTeamNotVerified
	}

	if team.Password != password {
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.tokenManager.NewJWT(team.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate login token failed: %w", err)
	}

	return &LoginResult{Token: token, TokenTTL: ttl, Team: team}, nil
}

func (s *teamService) GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error) {
	return s.teamRepository.GetAllVerified(ctx)
}

func (s *teamService) GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	team, err := s.teamRepository.GetVerifiedByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTeamNotFoundOrUnverified
		}
		return nil, fmt.Errorf("get verified team failed: %w", err)
	}

	return team, nil
}

// DeleteByUsername removes a registration in any state together with its members.
func (s *teamService) DeleteByUsername(ctx context.Context, username string) error {
	if err := s.teamRepository.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("delete team failed: %w", err)
	}

	return nil
}
