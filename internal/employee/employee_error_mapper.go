package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepoError translates postgres constraint violations into domain errors.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "uq_employee_email" {
				return employeeerrors.ErrEmailAlreadyExists
			}
		}
	}

	return err
}
