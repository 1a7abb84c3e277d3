package repository

import (
	"context"
	"fmt"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type submissionRepository struct {
	db *sqlx.DB
}

func newSubmissionRepository(db *sqlx.DB) *submissionRepository {
	return &submissionRepository{
		db: db,
	}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	const query = `
	INSERT INTO submission (id, username, title, url, description, created_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		submission.ID,
		submission.Username,
		submission.Title,
		submission.URL,
		submission.Description,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db insert submission: %w", err)
	}

	return nil
}

func (r *submissionRepository) GetByUsername(ctx context.Context, username string) ([]domain.Submission, error) {
	const query = `
	SELECT id, username, title, url, description, created_at FROM submission WHERE username = ? ORDER BY created_at DESC;
	`
	submissions := []domain.Submission{}
	if err := r.db.SelectContext(ctx, &submissions, query, username); err != nil {
		return nil, fmt.Errorf("select submissions by username failed: %w", err)
	}
	return submissions, nil
}

func (r *submissionRepository) GetAll(ctx context.Context) ([]domain.Submission, error) {
	const query = `
	SELECT id, username, title, url, description, created_at FROM submission ORDER BY created_at DESC;
	`
	submissions := []domain.Submission{}
	if err := r.db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, fmt.Errorf("select submissions failed: %w", err)
	}
	return submissions, nil
}
