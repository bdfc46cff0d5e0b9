package models

import "time"

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement: her stok değişikliği için eklenen denetim kaydı.
// Quantity her zaman mutlak değer olarak tutulur, yön Type alanındadır.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	CreatedBy string       `json:"createdBy,omitempty"`
}
