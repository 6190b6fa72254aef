package payroll

import (
	"context"

	payrollerrors "go-payroll/internal/payroll/errors"
)

// uniquenessGuard rejects a second payroll for the same employee and period.
// The check is advisory: uq_payroll_employee_period on the table is what
// makes check-then-insert safe under concurrent requests, and a violation
// there is mapped to the same ErrPayrollAlreadyExists.
type uniquenessGuard struct {
	repo Repository
}

func (g uniquenessGuard) Check(ctx context.Context, employeeID string, month, year int) error {
	exists, err := g.repo.ExistsForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return err
	}
	if exists {
		return payrollerrors.ErrPayrollAlreadyExists
	}
	return nil
}
