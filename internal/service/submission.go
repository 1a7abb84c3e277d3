package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csv-challenge/backend/internal/domain"
	"github.com/csv-challenge/backend/internal/repository"

	"github.com/google/uuid"
)

type submissionService struct {
	submissionRepository repository.Submissions
	teamRepository       repository.Teams
	now                  func() time.Time
}

func newSubmissionService(submissionRepository repository.Submissions, teamRepository repository.Teams) *submissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		teamRepository:       teamRepository,
		now:                  time.Now,
	}
}

func (s *submissionService) requireVerified(ctx context.Context, username string) error {
	team, err := s.teamRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrTeamNotFoundOrUnverified
		}
		return fmt.Errorf("get team by username failed: %w", err)
	}

	if !team.IsVerified {
		return ErrTeamNotFoundOrUnverified
	}

	return nil
}

func (s *submissionService) Create(ctx context.Context, input SubmissionInput) (*domain.Submission, error) {
	if err := s.requireVerified(ctx, input.Username); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate submission id failed: %w", err)
	}

	submission := &domain.Submission{
		ID:          id,
		Username:    input.Username,
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.submissionRepository.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission failed: %w", err)
	}

	return submission, nil
}

func (s *submissionService) GetByUsername(ctx context.Context, username string) ([]domain.Submission, error) {
	if err := s.requireVerified(ctx, username); err != nil {
		return nil, err
	}

	return s.submissionRepository.GetByUsername(ctx, username)
}

func (s *submissionService) GetAll(ctx context.Context) ([]domain.Submission, error) {
	return s.submissionRepository.GetAll(ctx)
}
