package payroll

import (
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"
)

type transition struct {
	from string
	to   string
}

// transitionRule updates paid_at for an allowed status change. requested is
// the caller's explicit paid_at, if any.
type transitionRule func(p *Payroll, requested *time.Time, now time.Time)

// Transitions missing from this table are rejected. PAID never returns to
// PENDING.
var transitions = map[transition]transitionRule{
	{StatusPending, StatusPending}: keepPaidAt,
	{StatusPending, StatusPaid}:    stampPaidAt,
	{StatusPaid, StatusPaid}:       keepPaidAt,
}

func stampPaidAt(p *Payroll, _ *time.Time, now time.Time) {
	paidAt := now
	p.PaidAt = &paidAt
}

func keepPaidAt(p *Payroll, requested *time.Time, _ time.Time) {
	if requested != nil {
		paidAt := *requested
		p.PaidAt = &paidAt
	}
}

func validStatus(status string) bool {
	return status == StatusPending || status == StatusPaid
}

// applyTransition moves p to target and reports whether p entered PAID.
func applyTransition(p *Payroll, target string, requestedPaidAt *time.Time, now time.Time) (becamePaid bool, err error) {
	if !validStatus(target) {
		return false, payrollerrors.ErrInvalidStatus
	}

	rule, ok := transitions[transition{from: p.Status, to: target}]
	if !ok {
		return false, payrollerrors.ErrInvalidStatusTransition
	}
	if target == StatusPending && requestedPaidAt != nil {
		return false, payrollerrors.ErrInvalidPaidAt
	}

	becamePaid = p.Status != StatusPaid && target == StatusPaid
	rule(p, requestedPaidAt, now)
	p.Status = target
	return becamePaid, nil
}

func ensureDeletable(p *Payroll) error {
	if p.Status == StatusPaid {
		return payrollerrors.ErrDeletePaidPayroll
	}
	return nil
}

// applyAmounts overwrites the supplied money fields and re-derives the
// totals the caller left out, so total and net always stay consistent.
func applyAmounts(p *Payroll, a Amounts) error {
	for _, v := range []*int64{
		a.GrossSalary, a.PensionDeduction, a.HealthDeduction,
		a.UnemploymentDeduction, a.TotalDeduction, a.NetSalary,
	} {
		if v != nil && *v < 0 {
			return payrollerrors.ErrInvalidMoneyValue
		}
	}

	if a.GrossSalary != nil {
		p.GrossSalary = *a.GrossSalary
	}
	if a.PensionDeduction != nil {
		p.PensionDeduction = *a.PensionDeduction
	}
	if a.HealthDeduction != nil {
		p.HealthDeduction = *a.HealthDeduction
	}
	if a.UnemploymentDeduction != nil {
		p.UnemploymentDeduction = *a.UnemploymentDeduction
	}

	sum := p.PensionDeduction + p.HealthDeduction + p.UnemploymentDeduction
	if a.TotalDeduction != nil && *a.TotalDeduction != sum {
		return payrollerrors.ErrInconsistentAmounts
	}
	p.TotalDeduction = sum

	net := p.GrossSalary - p.TotalDeduction
	if a.NetSalary != nil && *a.NetSalary != net {
		return payrollerrors.ErrInconsistentAmounts
	}
	if net < 0 {
		return payrollerrors.ErrInconsistentAmounts
	}
	p.NetSalary = net
	return nil
}
