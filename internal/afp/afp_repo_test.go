package afp_test

import (
	"context"
	"testing"

	"go-payroll/internal/afp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAFPTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&afp.AFP{}))
	return db
}

func TestAFPRepository(t *testing.T) {
	db := setupAFPTestDB(t)
	repo := afp.NewRepository(db)
	ctx := context.Background()

	habitat := &afp.AFP{ID: uuid.New(), Name: "AFP Habitat", Discount: decimal.RequireFromString("10.27")}
	capital := &afp.AFP{ID: uuid.New(), Name: "AFP Capital", Discount: decimal.RequireFromString("10.44")}
	require.NoError(t, repo.Create(ctx, habitat))
	require.NoError(t, repo.Create(ctx, capital))

	t.Run("find all ordered by name", func(t *testing.T) {
		all, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "AFP Capital", all[0].Name)
		assert.True(t, decimal.RequireFromString("10.44").Equal(all[0].Discount))
	})

	t.Run("duplicate name is translated", func(t *testing.T) {
		err := repo.Create(ctx, &afp.AFP{ID: uuid.New(), Name: "AFP Habitat"})

		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("delete missing row", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.NewString())

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete existing row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, capital.ID.String()))

		_, err := repo.FindByID(ctx, capital.ID.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
