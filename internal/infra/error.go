package infra

import (
	"errors"
	"log/slog"

	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// ConstraintActiveMenuPerCafe is the partial unique index allowing one active menu per cafe.
const ConstraintActiveMenuPerCafe = "ux_menus_active_per_cafe"

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a pgx error by SQLSTATE. Unclassified errors are
// logged as DB failures and marked with errs.ErrDatabaseOperationFailed.
func WrapRepoErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	if pgconv.IsNoRows(err) {
		return RepositoryError{Kind: KindNotFound, msg: msg, err: err}
	}

	kind := KindDBFailure
	var constraint string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			kind = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			kind = KindForeignKeyViolated
		}
	}

	if kind == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(kind)), slog.String("error", err.Error()))
		err = errs.Mark(errs.Wrap(err, msg), errs.ErrDatabaseOperationFailed)
	} else {
		slog.Warn("Repository constraint violated: "+msg,
			slog.String("kind", string(kind)), slog.String("constraint", constraint))
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func NotFound(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, or "" when err carries none.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
