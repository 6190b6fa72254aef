package healthplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeFonasa = "FONASA"
	TypeIsapre = "ISAPRE"
)

type HealthPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type      string          `gorm:"type:varchar(10);not null;uniqueIndex:uq_health_plan_type_name"`
	Name      string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_health_plan_type_name"`
	Discount  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (HealthPlan) TableName() string {
	return "health_plans"
}
