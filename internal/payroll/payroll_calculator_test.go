package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDeductions_ReferenceScenario(t *testing.T) {
	d, err := payroll.CalculateDeductions(1_500_000, decimal.RequireFromString("10.58"), decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, payroll.Deductions{
		Pension:      158_700,
		Health:       0,
		Unemployment: 45_000,
		Total:        203_700,
		Net:          1_296_300,
	}, d)
}

func TestCalculateDeductions_RoundsEachComponentHalfUp(t *testing.T) {
	// 1,250 * 10.58% = 132.25 -> 132; 1,250 * 7% = 87.5 -> 88; 1,250 * 3% = 37.5 -> 38
	d, err := payroll.CalculateDeductions(1_250, decimal.RequireFromString("10.58"), decimal.NewFromInt(7))

	require.NoError(t, err)
	assert.Equal(t, int64(132), d.Pension)
	assert.Equal(t, int64(88), d.Health)
	assert.Equal(t, int64(38), d.Unemployment)
	assert.Equal(t, int64(258), d.Total)
	assert.Equal(t, int64(992), d.Net)
}

func TestCalculateDeductions_ZeroSalary(t *testing.T) {
	d, err := payroll.CalculateDeductions(0, decimal.RequireFromString("10.27"), decimal.RequireFromString("8.5"))

	require.NoError(t, err)
	assert.Equal(t, payroll.Deductions{}, d)
}

func TestCalculateDeductions_RejectsNegativeInput(t *testing.T) {
	_, err := payroll.CalculateDeductions(-1, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMoneyValue)

	_, err = payroll.CalculateDeductions(100, decimal.NewFromInt(-1), decimal.Zero)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidRate)
}

func TestCalculateDeductions_TotalsAddUp(t *testing.T) {
	salaries := []int64{0, 1, 99, 333_333, 460_000, 1_500_000, 2_345_679, 10_000_001}
	rates := []string{"0", "7", "8.5", "9.77", "10.27", "10.44", "10.48", "10.58", "15"}

	for _, salary := range salaries {
		for _, p := range rates {
			for _, h := range rates {
				d, err := payroll.CalculateDeductions(salary, decimal.RequireFromString(p), decimal.RequireFromString(h))
				require.NoError(t, err)

				assert.Equal(t, d.Pension+d.Health+d.Unemployment, d.Total)
				assert.Equal(t, salary, d.Net+d.Total)

				unemployment := decimal.NewFromInt(salary).Mul(decimal.RequireFromString("0.03")).Round(0).IntPart()
				assert.Equal(t, unemployment, d.Unemployment, "salary %d", salary)
			}
		}
	}
}
