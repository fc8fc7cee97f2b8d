package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soujunior/vagas-api/internal/domain/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

// handleError maps driver errors to repository sentinels and wraps everything else with op.
func handleError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, &repository.ConflictError{Field: conflictField(pgErr)})
	}
	return fmt.Errorf("%s: %w", op, err)
}

// conflictField turns "users_cpf_key" on table users into "cpf".
func conflictField(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_key")
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return name
}

func countRows(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
