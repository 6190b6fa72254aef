package payroll_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"

	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	mu sync.Mutex

	withTxFn                      func(tx *sql.Tx) payroll.Repository
	createFn                      func(ctx context.Context, p *payroll.Payroll) error
	findAllByCompanyFn            func(ctx context.Context, companyID string, filter payroll.GetPayrollsFilterRequest) ([]payroll.Payroll, error)
	findByIDAndCompanyFn          func(ctx context.Context, companyID string, id string) (*payroll.Payroll, error)
	findByIDAndCompanyForUpdateFn func(ctx context.Context, companyID string, id string) (*payroll.Payroll, error)
	updateFn                      func(ctx context.Context, p *payroll.Payroll) error
	deleteFn                      func(ctx context.Context, companyID string, id string) error
	existsForPeriodFn             func(ctx context.Context, employeeID string, month, year int) (bool, error)
	setPayslipFn                  func(ctx context.Context, companyID string, id string, url string, generatedAt time.Time) error

	created []*payroll.Payroll
	updated []*payroll.Payroll
	deleted []string
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, p); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	return nil
}

func (f *fakePayrollRepository) FindAllByCompany(ctx context.Context, companyID string, filter payroll.GetPayrollsFilterRequest) ([]payroll.Payroll, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, filter)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*payroll.Payroll, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID string, id string) (*payroll.Payroll, error) {
	if f.findByIDAndCompanyForUpdateFn != nil {
		return f.findByIDAndCompanyForUpdateFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	if f.updateFn != nil {
		if err := f.updateFn(ctx, p); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, companyID string, id string) error {
	if f.deleteFn != nil {
		if err := f.deleteFn(ctx, companyID, id); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePayrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, employeeID, month, year)
	}
	return false, nil
}

func (f *fakePayrollRepository) SetPayslip(ctx context.Context, companyID string, id string, url string, generatedAt time.Time) error {
	if f.setPayslipFn != nil {
		return f.setPayslipFn(ctx, companyID, id, url, generatedAt)
	}
	return nil
}

func (f *fakePayrollRepository) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakeEmployeeReader struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeReader) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.employees {
		if f.employees[i].ID.String() == id && f.employees[i].CompanyID.String() == companyID {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeReader) FindAllByCompanyWithPlans(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID.String() == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeOutboxRepository struct {
	mu       sync.Mutex
	txs      []*sql.Tx
	events   []kafka.OutboxEvent
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

type txOutbox struct {
	parent *fakeOutboxRepository
	tx     *sql.Tx
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return &txOutbox{parent: f, tx: tx}
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	return f.record(ctx, nil, event)
}

func (f *fakeOutboxRepository) record(ctx context.Context, tx *sql.Tx, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, event); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs = append(f.txs, tx)
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (t *txOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return &txOutbox{parent: t.parent, tx: tx}
}

func (t *txOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	return t.parent.record(ctx, t.tx, event)
}

func (t *txOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (t *txOutbox) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (t *txOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakePayslipStore struct {
	saved map[string][]byte
	err   error
}

func (s *fakePayslipStore) Save(ctx context.Context, key string, body []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	s.saved[key] = body
	return "/files/payslips/" + key, nil
}

func (s *fakePayslipStore) URL(ctx context.Context, ref string) (string, error) {
	return "https://cdn.example.com" + ref, nil
}
