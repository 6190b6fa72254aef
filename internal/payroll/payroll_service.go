package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultGenerateWorkers = 4
	minYear                = 1
	maxYear                = 9999
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Update(ctx context.Context, companyID, actorID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (BatchReport, error)
	RequestPayslip(ctx context.Context, companyID, actorID, id string) error
	GeneratePayslip(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GetPayslipURL(ctx context.Context, companyID, id string) (string, error)
}

// EmployeeReader is the employee lookup the payroll module depends on.
// employee.Repository satisfies it.
type EmployeeReader interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
	FindAllByCompanyWithPlans(ctx context.Context, companyID string) ([]employee.Employee, error)
}

type ServiceConfig struct {
	// Workers bounds how many employees Generate processes at once.
	Workers int
	Now     func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	outbox    kafka.OutboxRepository
	store     payslip.Store
	workers   int
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	outbox kafka.OutboxRepository,
	store payslip.Store,
	cfg ServiceConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if cfg.Workers < 1 {
		cfg.Workers = DefaultGenerateWorkers
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		store:     store,
		workers:   cfg.Workers,
		now:       cfg.Now,
		logger:    l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	log := s.log(ctx)
	log.Debug("create payroll requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if err := validatePeriod(req.Month, req.Year); err != nil {
		return PayrollResponse{}, err
	}
	companyUUID, actorUUID, err := parseScope(companyID, actorID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	status := StatusPending
	if req.Status != nil {
		status = *req.Status
	}
	if !validStatus(status) {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatus
	}

	empl, err := s.employees.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, mapEmployeeLookupError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := (uniquenessGuard{repo: qtx}).Check(ctx, req.EmployeeID, req.Month, req.Year); err != nil {
		return PayrollResponse{}, err
	}

	p, err := newPayroll(*empl, companyUUID, actorUUID, req.Month, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}
	if err := applyAmounts(p, req.Amounts); err != nil {
		return PayrollResponse{}, err
	}
	becamePaid, err := applyTransition(p, status, nil, s.now())
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Create(ctx, p); err != nil {
		log.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if becamePaid {
		if err := s.queuePaid(ctx, tx, p); err != nil {
			log.Error("create payroll queue paid event failed", zap.Error(err))
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("create payroll success",
		zap.String("payroll_id", p.ID.String()),
		zap.String("status", p.Status),
	)

	p.Employee = &PayrollEmployee{ID: empl.ID, FirstName: empl.FirstName, LastName: empl.LastName}
	return mapToResponse(*p), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetPayrollsFilterRequest,
) ([]PayrollResponse, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, payrollerrors.ErrInvalidMonth
	}

	payrolls, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.log(ctx).Error("get all payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

// Update applies a partial change under a row lock. Concurrent updates to
// the same payroll are serialised; the last one to commit wins.
func (s *service) Update(
	ctx context.Context,
	companyID, actorID, id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	log := s.log(ctx)
	log.Debug("update payroll requested",
		zap.String("company_id", companyID),
		zap.String("payroll_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	wasPaid := p.Status == StatusPaid

	if err := applyAmounts(p, req.Amounts); err != nil {
		return PayrollResponse{}, err
	}

	target := p.Status
	if req.Status != nil {
		target = *req.Status
	}
	becamePaid, err := applyTransition(p, target, req.PaidAt, s.now())
	if err != nil {
		log.Warn("update payroll rejected transition",
			zap.String("payroll_id", id),
			zap.String("target", target),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}

	if wasPaid && !req.Amounts.empty() {
		log.Warn("correcting amounts on paid payroll",
			zap.String("payroll_id", id),
			zap.String("actor_id", actorID),
		)
	}

	if err := qtx.Update(ctx, p); err != nil {
		log.Error("update payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if becamePaid {
		if err := s.queuePaid(ctx, tx, p); err != nil {
			log.Error("update payroll queue paid event failed", zap.Error(err))
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("update payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("update payroll success",
		zap.String("payroll_id", id),
		zap.String("status", p.Status),
	)

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := s.log(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrPayrollNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete payroll begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := ensureDeletable(p); err != nil {
		return err
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		log.Error("delete payroll failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete payroll commit failed", zap.Error(err))
		return err
	}

	log.Info("delete payroll success", zap.String("payroll_id", id))
	return nil
}

// newPayroll computes a PENDING payroll for empl from its base salary and
// assigned plans. Missing plans contribute a zero rate.
func newPayroll(empl employee.Employee, companyID, actorID uuid.UUID, month, year int) (*Payroll, error) {
	pensionRate, healthRate := decimal.Zero, decimal.Zero
	if empl.AFP != nil {
		pensionRate = empl.AFP.Discount
	}
	if empl.HealthPlan != nil {
		healthRate = empl.HealthPlan.Discount
	}

	d, err := CalculateDeductions(empl.BaseSalary, pensionRate, healthRate)
	if err != nil {
		return nil, err
	}

	return &Payroll{
		ID:                    uuid.New(),
		CompanyID:             companyID,
		EmployeeID:            empl.ID,
		Month:                 month,
		Year:                  year,
		GrossSalary:           empl.BaseSalary,
		PensionDeduction:      d.Pension,
		HealthDeduction:       d.Health,
		UnemploymentDeduction: d.Unemployment,
		TotalDeduction:        d.Total,
		NetSalary:             d.Net,
		Status:                StatusPending,
		CreatedBy:             actorID,
	}, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return payrollerrors.ErrInvalidMonth
	}
	if year < minYear || year > maxYear {
		return payrollerrors.ErrInvalidYear
	}
	return nil
}

func parseScope(companyID, actorID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, payrollerrors.ErrInvalidActorID
	}
	return companyUUID, actorUUID, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                    p.ID.String(),
		CompanyID:             p.CompanyID.String(),
		EmployeeID:            p.EmployeeID.String(),
		Month:                 p.Month,
		Year:                  p.Year,
		GrossSalary:           p.GrossSalary,
		PensionDeduction:      p.PensionDeduction,
		HealthDeduction:       p.HealthDeduction,
		UnemploymentDeduction: p.UnemploymentDeduction,
		TotalDeduction:        p.TotalDeduction,
		NetSalary:             p.NetSalary,
		Status:                p.Status,
		PaidAt:                formatTime(p.PaidAt),
		CreatedBy:             p.CreatedBy.String(),
		PayslipURL:            p.PayslipURL,
		PayslipGeneratedAt:    formatTime(p.PayslipGeneratedAt),
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.Employee = &PayrollEmployeeResponse{
			ID:       p.Employee.ID.String(),
			FullName: p.Employee.FullName(),
		}
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}
