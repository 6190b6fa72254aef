package payroll

import (
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
)

// UnemploymentRate is the statutory unemployment insurance percentage. It
// does not depend on the employee's plans.
var UnemploymentRate = decimal.NewFromInt(3)

type Deductions struct {
	Pension      int64
	Health       int64
	Unemployment int64
	Total        int64
	Net          int64
}

// CalculateDeductions derives the deductions and net salary for baseSalary.
// Rates are percentages; pass decimal.Zero for an unassigned plan. Each
// component is rounded half-up to a whole unit before summing.
func CalculateDeductions(baseSalary int64, pensionRate, healthRate decimal.Decimal) (Deductions, error) {
	if baseSalary < 0 {
		return Deductions{}, payrollerrors.ErrInvalidMoneyValue
	}
	if pensionRate.IsNegative() || healthRate.IsNegative() {
		return Deductions{}, payrollerrors.ErrInvalidRate
	}

	base := decimal.NewFromInt(baseSalary)
	d := Deductions{
		Pension:      percentOf(base, pensionRate),
		Health:       percentOf(base, healthRate),
		Unemployment: percentOf(base, UnemploymentRate),
	}
	d.Total = d.Pension + d.Health + d.Unemployment
	d.Net = baseSalary - d.Total
	return d, nil
}

func percentOf(base, rate decimal.Decimal) int64 {
	// inputs are non-negative, so half away from zero is half-up
	return base.Mul(rate).Shift(-2).Round(0).IntPart()
}
