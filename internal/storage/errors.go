// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// isNoRows matches both the database/sql and the native pgx empty result
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// writeError maps constraint violations of a write to the sentinel errors, conflict describes the clashing row
func writeError(op string, err error, conflict string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %w", conflict, ErrDuplicateKey)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("failed to %s, %s: %w", op, pgErr.ConstraintName, ErrForeignKeyViolation)
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
