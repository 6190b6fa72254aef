package employee_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/afp"
	"go-payroll/internal/employee"
	"go-payroll/internal/healthplan"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEmployeeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&afp.AFP{}, &healthplan.HealthPlan{}, &employee.Employee{}))
	return db
}

func TestEmployeeRepository(t *testing.T) {
	db := setupEmployeeTestDB(t)
	repo := employee.NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	otherCompany := uuid.New()

	provida := afp.AFP{ID: uuid.New(), Name: "AFP Provida", Discount: decimal.RequireFromString("10.58")}
	fonasa := healthplan.HealthPlan{ID: uuid.New(), Type: healthplan.TypeFonasa, Name: "Tramo B", Discount: decimal.NewFromInt(7)}
	require.NoError(t, db.Create(&provida).Error)
	require.NoError(t, db.Create(&fonasa).Error)

	withPlans := &employee.Employee{
		ID: uuid.New(), CompanyID: companyID, FirstName: "Ana", LastName: "Rojas",
		Email: "ana@acme.cl", BaseSalary: 1_500_000, HireDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		AFPID: &provida.ID, HealthPlanID: &fonasa.ID,
	}
	noPlans := &employee.Employee{
		ID: uuid.New(), CompanyID: companyID, FirstName: "Luis", LastName: "Mena",
		Email: "luis@acme.cl", BaseSalary: 800_000, HireDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	foreign := &employee.Employee{
		ID: uuid.New(), CompanyID: otherCompany, FirstName: "Eva", LastName: "Soto",
		Email: "eva@other.cl", HireDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, e := range []*employee.Employee{withPlans, noPlans, foreign} {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("preloads plans scoped to company", func(t *testing.T) {
		empls, err := repo.FindAllByCompanyWithPlans(ctx, companyID.String())

		require.NoError(t, err)
		require.Len(t, empls, 2)
		for _, e := range empls {
			if e.ID == withPlans.ID {
				require.NotNil(t, e.AFP)
				require.NotNil(t, e.HealthPlan)
				assert.True(t, decimal.RequireFromString("10.58").Equal(e.AFP.Discount))
				assert.Equal(t, "Tramo B", e.HealthPlan.Name)
			} else {
				assert.Nil(t, e.AFP)
				assert.Nil(t, e.HealthPlan)
			}
		}
	})

	t.Run("find by id respects tenant", func(t *testing.T) {
		_, err := repo.FindByIDAndCompany(ctx, companyID.String(), foreign.ID.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		got, err := repo.FindByIDAndCompany(ctx, otherCompany.String(), foreign.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Eva Soto", got.FullName())
	})

	t.Run("duplicate email in company", func(t *testing.T) {
		err := repo.Create(ctx, &employee.Employee{
			ID: uuid.New(), CompanyID: companyID, FirstName: "Ana", LastName: "Bis",
			Email: "ana@acme.cl", HireDate: time.Now(),
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("soft delete hides employee", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, companyID.String(), noPlans.ID.String()))

		empls, err := repo.FindAllByCompany(ctx, companyID.String())
		require.NoError(t, err)
		assert.Len(t, empls, 1)

		assert.ErrorIs(t, repo.Delete(ctx, companyID.String(), noPlans.ID.String()), gorm.ErrRecordNotFound)
	})
}
