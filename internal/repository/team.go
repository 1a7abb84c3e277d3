package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/csv-challenge/backend/internal/db"
	"github.com/csv-challenge/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const teamColumns = "id, team_name, organization, org_address, email, username, password, is_verified, created_at, updated_at"

type teamRepository struct {
	db *sqlx.DB
}

func newTeamRepository(db *sqlx.DB) *teamRepository {
	return &teamRepository{
		db: db,
	}
}

func (r *teamRepository) CreateWithMembers(ctx context.Context, team *domain.TeamRegistration) error {
	const op = "repository.team.CreateWithMembers"

	const teamQuery = `
	INSERT INTO team_registration (id, team_name, organization, org_address, email, username, password, is_verified)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?)
	`
	const memberQuery = `
	INSERT INTO team_member (id, team_id, name, is_leader, position)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)
	`

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, teamQuery,
			team.ID,
			team.TeamName,
			team.Organization,
			team.OrgAddress,
			team.Email,
			team.Username,
			team.Password,
			team.IsVerified,
		)
		if err != nil {
			if db.IsDuplicateEntry(err) {
				return domain.ErrDuplicateEntry
			}
			return fmt.Errorf("%s: insert team failed: %w", op, err)
		}

		for i := range team.Members {
			member := &team.Members[i]
			member.TeamID = team.ID
			member.Position = i
			if _, err := tx.ExecContext(ctx, memberQuery, member.ID, member.TeamID, member.Name, member.IsLeader, member.Position); err != nil {
				return fmt.Errorf("%s: insert member failed: %w", op, err)
			}
		}

		return nil
	})
}

func (r *teamRepository) getOne(ctx context.Context, op string, where string, args ...interface{}) (*domain.TeamRegistration, error) {
	query := "SELECT " + teamColumns + " FROM team_registration WHERE " + where

	var team domain.TeamRegistration
	if err := r.db.GetContext(ctx, &team, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select team failed: %w", op, err)
	}

	return &team, nil
}

func (r *teamRepository) GetByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	return r.getOne(ctx, "repository.team.GetByUsername", "username = ?", username)
}

func (r *teamRepository) GetByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error) {
	return r.getOne(ctx, "repository.team.GetByEmail", "email = ?", email)
}

// GetByLogin matches login against both username and email.
func (r *teamRepository) GetByLogin(ctx context.Context, login string) (*domain.TeamRegistration, error) {
	return r.getOne(ctx, "repository.team.GetByLogin", "username = ? OR email = ? LIMIT 1", login, login)
}

func (r *teamRepository) GetUnverifiedByEmail(ctx context.Context, email string) (*domain.TeamRegistration, error) {
	return r.getOne(ctx, "repository.team.GetUnverifiedByEmail", "email = ? AND is_verified = FALSE", email)
}

func (r *teamRepository) GetVerifiedByUsername(ctx context.Context, username string) (*domain.TeamRegistration, error) {
	const op = "repository.team.GetVerifiedByUsername"

	team, err := r.getOne(ctx, op, "username = ? AND is_verified = TRUE", username)
	if err != nil {
		return nil, err
	}

	teams := []domain.TeamRegistration{*team}
	if err := r.attachMembers(ctx, teams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &teams[0], nil
}

func (r *teamRepository) GetAllVerified(ctx context.Context) ([]domain.TeamRegistration, error) {
	const op = "repository.team.GetAllVerified"

	query := "SELECT " + teamColumns + " FROM team_registration WHERE is_verified = TRUE ORDER BY created_at ASC"

	var teams []domain.TeamRegistration
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("%s: select teams failed: %w", op, err)
	}

	if err := r.attachMembers(ctx, teams); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teams, nil
}

func (r *teamRepository) attachMembers(ctx context.Context, teams []domain.TeamRegistration) error {
	if len(teams) == 0 {
		return nil
	}

	ids := make([][]byte, 0, len(teams))
	index := make(map[uuid.UUID]int, len(teams))
	for i := range teams {
		ids = append(ids, teams[i].ID[:])
		index[teams[i].ID] = i
		teams[i].Members = []domain.TeamMember{}
	}

	query, args, err := sqlx.In(`
	SELECT id, team_id, name, is_leader, position
	FROM team_member
	WHERE team_id IN (?)
	ORDER BY team_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("build members query failed: %w", err)
	}

	var members []domain.TeamMember
	if err := r.db.SelectContext(ctx, &members, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select members failed: %w", err)
	}

	for _, member := range members {
		if i, ok := index[member.TeamID]; ok {
			teams[i].Members = append(teams[i].Members, member)
		}
	}

	return nil
}

func (r *teamRepository) MarkVerifiedWithTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	const op = "repository.team.MarkVerifiedWithTx"

	const query = `
	UPDATE team_registration
	SET is_verified = TRUE
	WHERE id = uuid_to_bin(?) AND is_verified = FALSE
	`

	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: update team failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// DeleteByUsername removes the team and its members in one transaction.
func (r *teamRepository) DeleteByUsername(ctx context.Context, username string) error {
	const op = "repository.team.DeleteByUsername"

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id uuid.UUID
		if err := tx.GetContext(ctx, &id, "SELECT id FROM team_registration WHERE username = ? FOR UPDATE", username); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("%s: select team failed: %w", op, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM team_member WHERE team_id = ?", id[:]); err != nil {
			return fmt.Errorf("%s: delete members failed: %w", op, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM team_registration WHERE id = ?", id[:]); err != nil {
			return fmt.Errorf("%s: delete team failed: %w", op, err)
		}

		return nil
	})
}
