package payroll

import (
	"context"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payslip"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestPayslip queues payslip rendering for the consumer.
func (s *service) RequestPayslip(ctx context.Context, companyID, actorID, id string) error {
	p, err := s.findPaid(ctx, companyID, id)
	if err != nil {
		return err
	}

	if err := s.queuePayslipRequested(ctx, p, actorID); err != nil {
		s.log(ctx).Error("request payslip queue failed", zap.String("payroll_id", id), zap.Error(err))
		return err
	}
	return nil
}

// GeneratePayslip renders and stores the payslip of a PAID payroll.
// Running it again overwrites the document and its timestamp.
func (s *service) GeneratePayslip(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	log := s.log(ctx)

	p, err := s.findPaid(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	doc := payslip.Document{
		PayrollID:             p.ID.String(),
		Month:                 p.Month,
		Year:                  p.Year,
		GrossSalary:           p.GrossSalary,
		PensionDeduction:      p.PensionDeduction,
		HealthDeduction:       p.HealthDeduction,
		UnemploymentDeduction: p.UnemploymentDeduction,
		TotalDeduction:        p.TotalDeduction,
		NetSalary:             p.NetSalary,
	}
	if p.Employee != nil {
		doc.EmployeeName = p.Employee.FullName()
	}
	if paidAt := formatTime(p.PaidAt); paidAt != nil {
		doc.PaidAt = *paidAt
	}

	body, err := payslip.Render(doc)
	if err != nil {
		return PayrollResponse{}, err
	}

	ref, err := s.store.Save(ctx, payslip.ObjectKey(id), body)
	if err != nil {
		log.Error("store payslip failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	generatedAt := s.now()
	if err := s.repo.SetPayslip(ctx, companyID, id, ref, generatedAt); err != nil {
		log.Error("record payslip failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}
	p.PayslipURL = &ref
	p.PayslipGeneratedAt = &generatedAt

	log.Info("payslip generated", zap.String("payroll_id", id), zap.String("ref", ref))
	return mapToResponse(*p), nil
}

func (s *service) GetPayslipURL(ctx context.Context, companyID, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", payrollerrors.ErrPayrollNotFound
	}

	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}
	if p.PayslipURL == nil || *p.PayslipURL == "" {
		return "", payrollerrors.ErrPayslipNotGenerated
	}

	return s.store.URL(ctx, *p.PayslipURL)
}

func (s *service) findPaid(ctx context.Context, companyID, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}

	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if p.Status != StatusPaid {
		return nil, payrollerrors.ErrPayslipOnlyPaid
	}
	return p, nil
}
