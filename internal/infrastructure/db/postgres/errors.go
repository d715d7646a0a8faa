package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	ConstraintUsersEmail    = "users_email_key"
	ConstraintProviderOwner = "prestadores_user_id_key"
)

// IsPgUniqueViolation reports a 23505 error. When constraints are given the
// violated constraint must be one of them.
func IsPgUniqueViolation(err error, constraints ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
