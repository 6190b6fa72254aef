package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipTopics are the topics whose events lead to a payslip.
var PayslipTopics = []string{events.PayrollPaidTopic, events.PayrollPayslipRequestedTopic}

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
}

type payslipTarget struct {
	PayrollID string `json:"payroll_id"`
	CompanyID string `json:"company_id"`
}

// ConsumePayslipEvents renders a payslip for every payroll.paid and
// payroll.payslip_requested event until ctx is cancelled.
func ConsumePayslipEvents(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started", zap.Strings("topics", PayslipTopics))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll payslip message failed", zap.Error(err))
			continue
		}

		handlePayslipMessage(ctx, reader, generator, msg, log)
	}
}

func handlePayslipMessage(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	msg kafkago.Message,
	log *zap.Logger,
) {
	target, err := decodePayslipTarget(msg)
	if err != nil {
		log.Error("decode payroll payslip event failed",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	_, err = generator.GeneratePayslip(ctx, target.CompanyID, target.PayrollID)
	switch {
	case err == nil:
	case isPermanent(err):
		log.Warn("skipping payslip event",
			zap.String("payroll_id", target.PayrollID),
			zap.String("company_id", target.CompanyID),
			zap.Error(err),
		)
	default:
		log.Error("generate payslip failed",
			zap.String("payroll_id", target.PayrollID),
			zap.String("company_id", target.CompanyID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit payroll payslip message failed", zap.Error(err))
		return
	}

	if err == nil {
		log.Info("payroll payslip generated",
			zap.String("topic", msg.Topic),
			zap.String("payroll_id", target.PayrollID),
			zap.String("company_id", target.CompanyID),
		)
	}
}

func decodePayslipTarget(msg kafkago.Message) (payslipTarget, error) {
	var target payslipTarget
	switch msg.Topic {
	case events.PayrollPaidTopic, events.PayrollPayslipRequestedTopic:
	default:
		return target, errors.New("unexpected topic " + msg.Topic)
	}
	if err := json.Unmarshal(msg.Value, &target); err != nil {
		return target, err
	}
	if target.PayrollID == "" || target.CompanyID == "" {
		return target, errors.New("payroll_id and company_id are required")
	}
	return target, nil
}

// isPermanent reports errors that redelivery cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, payrollerrors.ErrPayrollNotFound) || errors.Is(err, payrollerrors.ErrPayslipOnlyPaid)
}
