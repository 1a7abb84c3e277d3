package domain

import (
	"time"

	"github.com/google/uuid"
)

// TeamRegistration is the aggregate root of a registered team. It owns its members.
type TeamRegistration struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	TeamName     string       `db:"team_name" json:"teamName"`
	Organization string       `db:"organization" json:"organization"`
	OrgAddress   string       `db:"org_address" json:"orgAddress"`
	Email        string       `db:"email" json:"email"`
	Username     string       `db:"username" json:"username"`
	Password     string       `db:"password" json:"-"`
	IsVerified   bool         `db:"is_verified" json:"is_verified"`
	Members      []TeamMember `db:"-" json:"members"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

type TeamMember struct {
	ID       uuid.UUID `db:"id" json:"-"`
	TeamID   uuid.UUID `db:"team_id" json:"-"`
	Name     string    `db:"name" json:"name"`
	IsLeader bool      `db:"is_leader" json:"isLeader"`
	Position int       `db:"position" json:"-"`
}
