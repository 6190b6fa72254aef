package healthplan_test

import (
	"context"
	"testing"

	"go-payroll/internal/healthplan"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestHealthPlanRepository_FindAllByType(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&healthplan.HealthPlan{}))

	repo := healthplan.NewRepository(db)
	ctx := context.Background()

	seed := []healthplan.HealthPlan{
		{ID: uuid.New(), Type: healthplan.TypeFonasa, Name: "Tramo B", Discount: decimal.NewFromInt(7)},
		{ID: uuid.New(), Type: healthplan.TypeFonasa, Name: "Tramo A", Discount: decimal.Zero},
		{ID: uuid.New(), Type: healthplan.TypeIsapre, Name: "Plan Isapre 1", Discount: decimal.RequireFromString("8.5")},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	fonasa, err := repo.FindAll(ctx, healthplan.TypeFonasa)
	require.NoError(t, err)
	require.Len(t, fonasa, 2)
	assert.Equal(t, "Tramo A", fonasa[0].Name)

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	err = repo.Create(ctx, &healthplan.HealthPlan{ID: uuid.New(), Type: healthplan.TypeFonasa, Name: "Tramo A"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
