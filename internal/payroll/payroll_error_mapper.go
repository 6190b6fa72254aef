package payroll

import (
	"errors"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniquePayrollPeriodConstraint = "uq_payroll_employee_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payrollerrors.ErrPayrollAlreadyExists.WithErr(err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return payrollerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == uniquePayrollPeriodConstraint:
			return payrollerrors.ErrPayrollAlreadyExists.WithErr(err)
		case pgErr.Code == "23503":
			return payrollerrors.ErrEmployeeNotFound
		}
	}

	return err
}

func mapEmployeeLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrEmployeeNotFound
	}
	return err
}
