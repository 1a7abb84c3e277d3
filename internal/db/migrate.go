package db

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, dbConn *sqlx.DB) error {
	for _, stmt := range statements(schema) {
		if _, err := dbConn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement failed: %w", err)
		}
	}

	return nil
}

func statements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
