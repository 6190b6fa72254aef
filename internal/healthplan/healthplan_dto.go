package healthplan

import "github.com/shopspring/decimal"

type CreateHealthPlanRequest struct {
	Type     string          `json:"type" binding:"required,oneof=FONASA ISAPRE"`
	Name     string          `json:"name" binding:"required,max=120"`
	Discount decimal.Decimal `json:"discount"`
}

type UpdateHealthPlanRequest struct {
	Type     *string          `json:"type" binding:"omitempty,oneof=FONASA ISAPRE"`
	Name     *string          `json:"name" binding:"omitempty,max=120"`
	Discount *decimal.Decimal `json:"discount"`
}

type GetHealthPlansFilterRequest struct {
	Type string `form:"type" binding:"omitempty,oneof=FONASA ISAPRE"`
}

type HealthPlanResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Discount  decimal.Decimal `json:"discount"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
