package events

import "time"

const (
	PayrollBatchGeneratedTopic     = "hr.payroll.batch.generated.v1"
	PayrollBatchGeneratedEventType = "payroll.batch_generated"
)

type PayrollBatchGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	CompanyID   string    `json:"company_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Processed   int       `json:"processed"`
	Successful  int       `json:"successful"`
	Failed      int       `json:"failed"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
