package payroll

import (
	"context"
	"errors"
	"fmt"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type batchOutcome struct {
	payrollID string
	err       error
}

// Generate creates a PENDING payroll for every employee of the company for
// month/year. One employee failing never stops the others; the report lists
// outcomes in the order employees were returned by the repository.
//
// Cancelling ctx stops employees that have not started yet. An employee
// already past the guard finishes its insert.
func (s *service) Generate(
	ctx context.Context,
	companyID, actorID string,
	req GeneratePayrollRequest,
) (BatchReport, error) {
	log := s.log(ctx)

	if err := validatePeriod(req.Month, req.Year); err != nil {
		return BatchReport{}, err
	}
	companyUUID, actorUUID, err := parseScope(companyID, actorID)
	if err != nil {
		return BatchReport{}, err
	}

	empls, err := s.employees.FindAllByCompanyWithPlans(ctx, companyID)
	if err != nil {
		log.Error("generate payrolls load employees failed", zap.Error(err))
		return BatchReport{}, err
	}
	if len(empls) == 0 {
		return BatchReport{}, payrollerrors.ErrNoEmployeesInCompany
	}

	log.Info("generate payrolls started",
		zap.String("company_id", companyID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("employees", len(empls)),
		zap.Int("workers", s.workers),
	)

	outcomes := make([]batchOutcome, len(empls))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range empls {
		g.Go(func() error {
			outcomes[i] = s.generateOne(ctx, empls[i], companyUUID, actorUUID, req.Month, req.Year)
			return nil
		})
	}
	_ = g.Wait()

	report := foldBatch(empls, outcomes, req.Month, req.Year)

	if err := s.queueBatchGenerated(ctx, companyID, actorID, req.Month, req.Year, report); err != nil {
		log.Warn("generate payrolls queue summary event failed", zap.Error(err))
	}

	log.Info("generate payrolls finished",
		zap.String("company_id", companyID),
		zap.Int("processed", report.Processed),
		zap.Int("successful", report.Successful),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

func (s *service) generateOne(
	ctx context.Context,
	empl employee.Employee,
	companyID, actorID uuid.UUID,
	month, year int,
) (out batchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("generate payroll panicked",
				zap.String("employee_id", empl.ID.String()),
				zap.Any("panic", r),
			)
			out = batchOutcome{err: fmt.Errorf("unexpected error: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return batchOutcome{err: err}
	}
	// started work runs to completion
	ctx = context.WithoutCancel(ctx)

	employeeID := empl.ID.String()
	if err := (uniquenessGuard{repo: s.repo}).Check(ctx, employeeID, month, year); err != nil {
		return batchOutcome{err: err}
	}

	p, err := newPayroll(empl, companyID, actorID, month, year)
	if err != nil {
		return batchOutcome{err: err}
	}
	if err := applyAmounts(p, Amounts{}); err != nil {
		return batchOutcome{err: err}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return batchOutcome{err: mapRepositoryError(err)}
	}

	return batchOutcome{payrollID: p.ID.String()}
}

func foldBatch(empls []employee.Employee, outcomes []batchOutcome, month, year int) BatchReport {
	report := BatchReport{
		Processed: len(empls),
		Results:   make([]BatchResult, 0, len(empls)),
		Errors:    make([]BatchError, 0),
	}

	for i, empl := range empls {
		o := outcomes[i]
		if o.err != nil {
			report.Errors = append(report.Errors, BatchError{
				EmployeeID: empl.ID.String(),
				Name:       empl.FullName(),
				Message:    batchErrorMessage(o.err, month, year),
			})
			continue
		}
		report.Results = append(report.Results, BatchResult{
			EmployeeID: empl.ID.String(),
			Name:       empl.FullName(),
			PayrollID:  o.payrollID,
		})
	}

	report.Successful = len(report.Results)
	report.Failed = len(report.Errors)
	return report
}

func batchErrorMessage(err error, month, year int) string {
	if errors.Is(err, payrollerrors.ErrPayrollAlreadyExists) {
		return fmt.Sprintf("payroll already exists for %d/%d", month, year)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
