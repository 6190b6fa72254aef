package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/afp"
	"go-payroll/internal/employee"
	"go-payroll/internal/healthplan"
	"go-payroll/internal/payroll"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPayrollTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&afp.AFP{}, &healthplan.HealthPlan{}, &employee.Employee{}, &payroll.Payroll{}))
	return db
}

func TestPayrollRepository(t *testing.T) {
	db := setupPayrollTestDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	empl := employee.Employee{
		ID: uuid.New(), CompanyID: companyID, FirstName: "Ana", LastName: "Rojas",
		Email: "ana@acme.cl", BaseSalary: 1_500_000, HireDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&empl).Error)

	newRow := func(month, year int, status string) *payroll.Payroll {
		return &payroll.Payroll{
			ID: uuid.New(), CompanyID: companyID, EmployeeID: empl.ID,
			Month: month, Year: year, GrossSalary: 1_500_000, NetSalary: 1_191_300,
			TotalDeduction: 308_700, Status: status, CreatedBy: uuid.New(),
		}
	}

	jan := newRow(1, 2026, payroll.StatusPaid)
	feb := newRow(2, 2026, payroll.StatusPending)
	dec := newRow(12, 2025, payroll.StatusPaid)
	for _, p := range []*payroll.Payroll{jan, feb, dec} {
		require.NoError(t, repo.Create(ctx, p))
	}

	t.Run("one payroll per employee and period", func(t *testing.T) {
		err := repo.Create(ctx, newRow(2, 2026, payroll.StatusPending))

		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("exists for period", func(t *testing.T) {
		exists, err := repo.ExistsForPeriod(ctx, empl.ID.String(), 2, 2026)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsForPeriod(ctx, empl.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("lists newest period first with employee name", func(t *testing.T) {
		payrolls, err := repo.FindAllByCompany(ctx, companyID.String(), payroll.GetPayrollsFilterRequest{})

		require.NoError(t, err)
		require.Len(t, payrolls, 3)
		assert.Equal(t, feb.ID, payrolls[0].ID)
		assert.Equal(t, jan.ID, payrolls[1].ID)
		assert.Equal(t, dec.ID, payrolls[2].ID)
		require.NotNil(t, payrolls[0].Employee)
		assert.Equal(t, "Ana Rojas", payrolls[0].Employee.FullName())
	})

	t.Run("filters", func(t *testing.T) {
		year := 2026
		payrolls, err := repo.FindAllByCompany(ctx, companyID.String(), payroll.GetPayrollsFilterRequest{
			Year: &year, Status: payroll.StatusPaid,
		})

		require.NoError(t, err)
		require.Len(t, payrolls, 1)
		assert.Equal(t, jan.ID, payrolls[0].ID)
	})

	t.Run("tenant isolation", func(t *testing.T) {
		_, err := repo.FindByIDAndCompany(ctx, uuid.NewString(), feb.ID.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		payrolls, err := repo.FindAllByCompany(ctx, uuid.NewString(), payroll.GetPayrollsFilterRequest{})
		require.NoError(t, err)
		assert.Empty(t, payrolls)
	})

	t.Run("update through a transaction", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		qtx := repo.WithTx(tx)
		locked, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID.String(), feb.ID.String())
		require.NoError(t, err)

		paidAt := time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC)
		locked.Status = payroll.StatusPaid
		locked.PaidAt = &paidAt
		require.NoError(t, qtx.Update(ctx, locked))
		require.NoError(t, tx.Commit())

		got, err := repo.FindByIDAndCompany(ctx, companyID.String(), feb.ID.String())
		require.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, got.Status)
		require.NotNil(t, got.PaidAt)
		assert.True(t, paidAt.Equal(*got.PaidAt))
	})

	t.Run("set payslip", func(t *testing.T) {
		generatedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, repo.SetPayslip(ctx, companyID.String(), jan.ID.String(), "/files/payslips/x.pdf", generatedAt))

		got, err := repo.FindByIDAndCompany(ctx, companyID.String(), jan.ID.String())
		require.NoError(t, err)
		require.NotNil(t, got.PayslipURL)
		assert.Equal(t, "/files/payslips/x.pdf", *got.PayslipURL)

		err = repo.SetPayslip(ctx, companyID.String(), uuid.NewString(), "/x", generatedAt)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, companyID.String(), dec.ID.String()))

		err := repo.Delete(ctx, companyID.String(), dec.ID.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
