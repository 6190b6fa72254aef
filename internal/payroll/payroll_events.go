package payroll

import (
	"context"
	"database/sql"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"
)

// queuePaid records payroll.paid in tx so the event exists iff the PAID
// status is committed.
func (s *service) queuePaid(ctx context.Context, tx *sql.Tx, p *Payroll) error {
	if s.outbox == nil {
		return nil
	}

	now := s.now()
	paidAt := now
	if p.PaidAt != nil {
		paidAt = *p.PaidAt
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		kafka.AggregatePayroll,
		p.ID.String(),
		events.PayrollPaidEventType,
		events.PayrollPaidTopic,
		events.PayrollPaidEvent{
			EventType:  events.PayrollPaidEventType,
			PayrollID:  p.ID.String(),
			CompanyID:  p.CompanyID.String(),
			EmployeeID: p.EmployeeID.String(),
			Month:      p.Month,
			Year:       p.Year,
			NetSalary:  p.NetSalary,
			PaidAt:     paidAt.UTC(),
			OccurredAt: now.UTC(),
		},
	)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) queueBatchGenerated(ctx context.Context, companyID, actorID string, month, year int, report BatchReport) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		kafka.AggregatePayroll,
		companyID,
		events.PayrollBatchGeneratedEventType,
		events.PayrollBatchGeneratedTopic,
		events.PayrollBatchGeneratedEvent{
			EventType:   events.PayrollBatchGeneratedEventType,
			CompanyID:   companyID,
			Month:       month,
			Year:        year,
			Processed:   report.Processed,
			Successful:  report.Successful,
			Failed:      report.Failed,
			RequestedBy: actorID,
			OccurredAt:  s.now().UTC(),
		},
	)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, event)
}

func (s *service) queuePayslipRequested(ctx context.Context, p *Payroll, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		kafka.AggregatePayroll,
		p.ID.String(),
		events.PayrollPayslipRequestedEventType,
		events.PayrollPayslipRequestedTopic,
		events.PayrollPayslipRequestedEvent{
			EventType:   events.PayrollPayslipRequestedEventType,
			PayrollID:   p.ID.String(),
			CompanyID:   p.CompanyID.String(),
			RequestedBy: actorID,
			OccurredAt:  s.now().UTC(),
		},
	)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, event)
}
