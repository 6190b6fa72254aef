package employee

import (
	"strings"
	"time"

	"go-payroll/internal/afp"
	"go-payroll/internal/healthplan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_email,priority:1"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	AFPID        *uuid.UUID `gorm:"column:afp_id;type:uuid;index"`
	HealthPlanID *uuid.UUID `gorm:"column:health_plan_id;type:uuid;index"`

	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email,priority:2"`
	JobTitle   string    `gorm:"type:varchar(120)"`
	BaseSalary int64     `gorm:"type:bigint;not null;default:0"`
	HireDate   time.Time `gorm:"type:date;not null"`

	AFP        *afp.AFP               `gorm:"foreignKey:AFPID;references:ID"`
	HealthPlan *healthplan.HealthPlan `gorm:"foreignKey:HealthPlanID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
