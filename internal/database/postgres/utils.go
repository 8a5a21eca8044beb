package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// ptrInt converts a pgtype.Int4 to *int.
// Returns nil if the int is not valid.
func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// intPtrToInt4 converts an optional int to pgtype.Int4
func intPtrToInt4(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*i), Valid: true}
}

// ptrToText converts a string pointer to pgtype.Text
func ptrToText(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// wrapErr maps constraint violations onto domain errors and wraps the rest.
func wrapErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeForeignKeyViolation, PgErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, msg, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, msg, err)
}
