package afp

import "github.com/shopspring/decimal"

type CreateAFPRequest struct {
	Name     string          `json:"name" binding:"required,max=120"`
	Discount decimal.Decimal `json:"discount"`
}

type UpdateAFPRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=120"`
	Discount *decimal.Decimal `json:"discount"`
}

type AFPResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Discount  decimal.Decimal `json:"discount"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
