package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return employeeerrors.ErrUnknownPlan
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_employee_email" {
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		case "23503":
			if pgErr.ConstraintName == "fk_payrolls_employee" {
				return employeeerrors.ErrEmployeeHasPayrolls
			}
			return employeeerrors.ErrUnknownPlan
		}
	}

	return err
}
