package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate value violates a unique constraint")
	ErrProtected        = errors.New("record is still referenced by protected rows")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrConstraint       = errors.New("value violates a table constraint")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// translateError maps driver errors onto the package sentinels, keeping the
// original error in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicate), errors.Is(err, ErrProtected),
		errors.Is(err, ErrInvalidReference), errors.Is(err, ErrConstraint):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrInvalidReference, err)
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		}
		return err
	}

	// SQLite reports constraint failures only through the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case strings.Contains(msg, "NOT NULL constraint failed"), strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}

// translateDeleteError is translateError for DELETE statements, where a
// foreign key failure means a RESTRICT rule kept the row.
func translateDeleteError(err error) error {
	err = translateError(err)
	if errors.Is(err, ErrInvalidReference) {
		return fmt.Errorf("%w: %w", ErrProtected, err)
	}
	return err
}

// notFoundIfNoRows turns a zero RowsAffected delete or update into ErrNotFound.
func notFoundIfNoRows(res *gorm.DB, what string, id uint64) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
