package models

import "time"

// StockItem: Product.StockQuantity'den bağımsız, konum bazlı stok kaydı.
// İki stok kavramı kaynak tasarımda ayrı tutulur, aralarında referans yoktur.
type StockItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
