package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product: kartela (kumaş numune kartı) kaydı.
// Code benzersiz olması beklenir ama store tarafında zorlanmaz.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Code          string           `json:"code"`
	Category      string           `json:"category,omitempty"`
	Description   string           `json:"description,omitempty"`
	Unit          string           `json:"unit,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity int              `json:"stockQuantity"`
	MinStockLevel int              `json:"minStockLevel"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
