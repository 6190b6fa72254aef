package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// Payroll is one employee's computation for a calendar month. Money fields
// are whole currency units.
type Payroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_payroll_company_period,priority:1"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	Month int `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:2;index:idx_payroll_company_period,priority:3"`
	Year  int `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:3;index:idx_payroll_company_period,priority:2"`

	GrossSalary           int64 `gorm:"type:bigint;not null;default:0"`
	PensionDeduction      int64 `gorm:"type:bigint;not null;default:0"`
	HealthDeduction       int64 `gorm:"type:bigint;not null;default:0"`
	UnemploymentDeduction int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeduction        int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary             int64 `gorm:"type:bigint;not null;default:0"`

	Status    string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaidAt    *time.Time `gorm:"index"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`

	PayslipURL         *string
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollEmployee is the read-only name projection loaded with a payroll.
type PayrollEmployee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

func (e PayrollEmployee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
