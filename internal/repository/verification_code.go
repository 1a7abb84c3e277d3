package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type verificationCodeRepository struct {
	db *sqlx.DB
}

func newVerificationCodeRepository(db *sqlx.DB) *verificationCodeRepository {
	return &verificationCodeRepository{
		db: db,
	}
}

// Replace drops every unused code for the email and stores code, keeping a single active code per email.
func (r *verificationCodeRepository) Replace(ctx context.Context, code *domain.VerificationCode) error {
	const op = "repository.verificationCode.Replace"

	const deleteQuery = `
    DELETE FROM verification_code
    WHERE email = ? AND is_used = FALSE
    `
	const insertQuery = `
    INSERT INTO verification_code (id, email, code, expires_at, is_used)
    VALUES (uuid_to_bin(:id), :email, :code, :expires_at, :is_used)
    `

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, code.Email); err != nil {
			return fmt.Errorf("%s: delete unused codes failed: %w", op, err)
		}

		res, err := tx.NamedExecContext(ctx, insertQuery, code)
		if err != nil {
			return fmt.Errorf("%s: insert verification code failed: %w", op, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%s: get rows affected failed: %w", op, err)
		}

		if rows != 1 {
			return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
		}

		return nil
	})
}

// GetUnused returns the newest unused row matching email and code, expired or not.
func (r *verificationCodeRepository) GetUnused(ctx context.Context, email string, code string) (*domain.VerificationCode, error) {
	const op = "repository.verificationCode.GetUnused"

	const query = `
    SELECT id, email, code, expires_at, is_used, created_at
    FROM verification_code
    WHERE email = ? AND code = ? AND is_used = FALSE
    ORDER BY created_at DESC
    LIMIT 1
    `

	var verificationCode domain.VerificationCode
	if err := r.db.GetContext(ctx, &verificationCode, query, email, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select verification code failed: %w", op, err)
	}

	return &verificationCode, nil
}

func (r *verificationCodeRepository) MarkUsedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	const op = "repository.verificationCode.MarkUsedWithTx"

	const query = `
    UPDATE verification_code
    SET is_used = TRUE
    WHERE id = uuid_to_bin(?) AND is_used = FALSE
    `

	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: update verification_code failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
