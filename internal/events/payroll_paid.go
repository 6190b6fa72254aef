package events

import "time"

const (
	PayrollPaidTopic     = "hr.payroll.paid.v1"
	PayrollPaidEventType = "payroll.paid"
)

type PayrollPaidEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  string    `json:"payroll_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetSalary  int64     `json:"net_salary"`
	PaidAt     time.Time `json:"paid_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
