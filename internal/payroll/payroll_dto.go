package payroll

import "time"

// Amounts carries the optional salary and deduction fields shared by create
// and update requests. A nil field means "not supplied".
type Amounts struct {
	GrossSalary           *int64 `json:"gross_salary"`
	PensionDeduction      *int64 `json:"pension_deduction"`
	HealthDeduction       *int64 `json:"health_deduction"`
	UnemploymentDeduction *int64 `json:"unemployment_deduction"`
	TotalDeduction        *int64 `json:"total_deduction"`
	NetSalary             *int64 `json:"net_salary"`
}

func (a Amounts) empty() bool {
	return a.GrossSalary == nil && a.PensionDeduction == nil && a.HealthDeduction == nil &&
		a.UnemploymentDeduction == nil && a.TotalDeduction == nil && a.NetSalary == nil
}

type CreatePayrollRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Status     *string `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	Amounts
}

type UpdatePayrollRequest struct {
	Status *string    `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	PaidAt *time.Time `json:"paid_at"`
	Amounts
}

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type GetPayrollsFilterRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      *int   `form:"month"`
	Year       *int   `form:"year"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING PAID"`
}

type PayrollEmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type PayrollResponse struct {
	ID                    string                   `json:"id"`
	CompanyID             string                   `json:"company_id"`
	EmployeeID            string                   `json:"employee_id"`
	Employee              *PayrollEmployeeResponse `json:"employee,omitempty"`
	Month                 int                      `json:"month"`
	Year                  int                      `json:"year"`
	GrossSalary           int64                    `json:"gross_salary"`
	PensionDeduction      int64                    `json:"pension_deduction"`
	HealthDeduction       int64                    `json:"health_deduction"`
	UnemploymentDeduction int64                    `json:"unemployment_deduction"`
	TotalDeduction        int64                    `json:"total_deduction"`
	NetSalary             int64                    `json:"net_salary"`
	Status                string                   `json:"status"`
	PaidAt                *string                  `json:"paid_at,omitempty"`
	CreatedBy             string                   `json:"created_by"`
	PayslipURL            *string                  `json:"payslip_url,omitempty"`
	PayslipGeneratedAt    *string                  `json:"payslip_generated_at,omitempty"`
	CreatedAt             string                   `json:"created_at"`
	UpdatedAt             string                   `json:"updated_at"`
}

type BatchResult struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	PayrollID  string `json:"payroll_id"`
}

type BatchError struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

type BatchReport struct {
	Processed  int           `json:"processed"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Results    []BatchResult `json:"results"`
	Errors     []BatchError  `json:"errors"`
}

type PayslipResponse struct {
	PayrollID   string `json:"payroll_id"`
	URL         string `json:"url"`
	GeneratedAt string `json:"generated_at"`
}
