package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/csv-challenge/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// memStore backs the repository interfaces with plain slices for scenario tests.
type memStore struct {
	mu          sync.Mutex
	teams       []*domain.TeamRegistration
	codes       []*domain.VerificationCode
	submissions []domain.Submission
}

type memTeams struct{ s *memStore }

func (r memTeams) CreateWithMembers(_ context.Context, team *domain.TeamRegistration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if t.Username == team.Username || t.Email == team.Email {
			return domain.ErrDuplicateEntry
		}
	}
	cp := *team
	cp.Members = append([]domain.TeamMember(nil), team.Members...)
	r.s.teams = append(r.s.teams, &cp)
	return nil
}

func (r memTeams) find(match func(t *domain.TeamRegistration) bool) (*domain.TeamRegistration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if match(t) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memTeams) GetByUsername(_ context.Context, username string) (*domain.TeamRegistration, error) {
	return r.find(func(t *domain.TeamRegistration) bool { return t.Username == username })
}

func (r memTeams) GetByEmail(_ context.Context, email string) (*domain.TeamRegistration, error) {
	return r.find(func(t *domain.TeamRegistration) bool { return t.Email == email })
}

func (r memTeams) GetByLogin(_ context.Context, login string) (*domain.TeamRegistration, error) {
	return r.find(func(t *domain.TeamRegistration) bool { return t.Username == login || t.Email == login })
}

func (r memTeams) GetUnverifiedByEmail(_ context.Context, email string) (*domain.TeamRegistration, error) {
	return r.find(func(t *domain.TeamRegistration) bool { return t.Email == email && !t.IsVerified })
}

func (r memTeams) GetVerifiedByUsername(_ context.Context, username string) (*domain.TeamRegistration, error) {
	return r.find(func(t *domain.TeamRegistration) bool { return t.Username == username && t.IsVerified })
}

func (r memTeams) GetAllVerified(_ context.Context) ([]domain.TeamRegistration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.TeamRegistration{}
	for _, t := range r.s.teams {
		if t.IsVerified {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r memTeams) MarkVerifiedWithTx(_ context.Context, _ *sqlx.Tx, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if t.ID == id && !t.IsVerified {
			t.IsVerified = true
			return nil
		}
	}
	return domain.ErrNoRowsAffected
}

func (r memTeams) DeleteByUsername(_ context.Context, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.teams {
		if t.Username == username {
			r.s.teams = append(r.s.teams[:i], r.s.teams[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memCodes struct{ s *memStore }

func (r memCodes) Replace(_ context.Context, code *domain.VerificationCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.codes[:0]
	for _, c := range r.s.codes {
		if c.Email == code.Email && !c.IsUsed {
			continue
		}
		kept = append(kept, c)
	}
	cp := *code
	r.s.codes = append(kept, &cp)
	return nil
}

func (r memCodes) GetUnused(_ context.Context, email string, code string) (*domain.VerificationCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := len(r.s.codes) - 1; i >= 0; i-- {
		c := r.s.codes[i]
		if c.Email == email && c.Code == code && !c.IsUsed {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memCodes) MarkUsedWithTx(_ context.Context, _ *sqlx.Tx, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.codes {
		if c.ID == id && !c.IsUsed {
			c.IsUsed = true
			return nil
		}
	}
	return domain.ErrNoRowsAffected
}

func (r memCodes) unusedFor(email string) int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, c := range r.s.codes {
		if c.Email == email && !c.IsUsed {
			n++
		}
	}
	return n
}

type memSubmissions struct{ s *memStore }

func (r memSubmissions) Create(_ context.Context, submission *domain.Submission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.submissions = append(r.s.submissions, *submission)
	return nil
}

func (r memSubmissions) GetByUsername(_ context.Context, username string) ([]domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Submission{}
	for _, s := range r.s.submissions {
		if strings.EqualFold(s.Username, username) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memSubmissions) GetAll(_ context.Context) ([]domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]domain.Submission{}, r.s.submissions...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memTransactor struct{}

func (memTransactor) WithinTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}
