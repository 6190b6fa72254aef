package app

import (
	"context"
	"fmt"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders payslips for paid payrolls until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	db, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	store, err := payslip.NewStore(cfg.Payslip, logger)
	if err != nil {
		return err
	}

	payrollService := newPayrollService(cfg, db, store, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		GroupTopics:    consumer.PayslipTopics,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumePayslipEvents(ctx, reader, payrollService, zap.L())
	}()

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()
	<-done

	return nil
}
