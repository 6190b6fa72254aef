package afp

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AFP is a pension fund administrator. Discount is the percentage of gross
// salary withheld for employees enrolled in it.
type AFP struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_afp_name"`
	Discount  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AFP) TableName() string {
	return "afps"
}
