package consumer

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeGenerator struct {
	calls []string
	errs  map[string]error
}

func (g *fakeGenerator) GeneratePayslip(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	g.calls = append(g.calls, companyID+"/"+id)
	return payroll.PayrollResponse{ID: id}, g.errs[id]
}

func TestConsumePayslipEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
		{Topic: events.PayrollPaidTopic, Value: []byte(`{"payroll_id":"p-1","company_id":"c-1"}`)},
		{Topic: events.PayrollPayslipRequestedTopic, Value: []byte(`{"payroll_id":"p-2","company_id":"c-1"}`)},
		{Topic: events.PayrollPaidTopic, Value: []byte(`not json`)},
		{Topic: events.PayrollPaidTopic, Value: []byte(`{"payroll_id":"p-3","company_id":"c-1"}`)},
		{Topic: events.PayrollPaidTopic, Value: []byte(`{"payroll_id":"p-4","company_id":"c-1"}`)},
	}}
	generator := &fakeGenerator{errs: map[string]error{
		"p-3": payrollerrors.ErrPayslipOnlyPaid,
		"p-4": errors.New("storage unavailable"),
	}}

	ConsumePayslipEvents(ctx, reader, generator, zap.NewNop())

	assert.Equal(t, []string{"c-1/p-1", "c-1/p-2", "c-1/p-3", "c-1/p-4"}, generator.calls)
	// transient failures stay uncommitted for redelivery
	assert.Len(t, reader.committed, 4)
	for _, m := range reader.committed {
		assert.NotContains(t, string(m.Value), "p-4")
	}
}

func TestDecodePayslipTarget(t *testing.T) {
	_, err := decodePayslipTarget(kafkago.Message{Topic: "hr.other.v1", Value: []byte(`{}`)})
	assert.Error(t, err)

	_, err = decodePayslipTarget(kafkago.Message{Topic: events.PayrollPaidTopic, Value: []byte(`{"payroll_id":"p-1"}`)})
	assert.Error(t, err)

	target, err := decodePayslipTarget(kafkago.Message{Topic: events.PayrollPaidTopic, Value: []byte(`{"payroll_id":"p-1","company_id":"c-1","net_salary":10}`)})
	assert.NoError(t, err)
	assert.Equal(t, "p-1", target.PayrollID)
}
