package models

import "time"

const BackupVersion = "1.0.0"

// BackupData: tüm koleksiyonların tek JSON zarfı. Restore alan bazında
// best-effort çalışır; zarfta olmayan alanlar mevcut veriyi korur.
type BackupData struct {
	Customers      []Customer      `json:"customers,omitempty"`
	Products       []Product       `json:"products,omitempty"`
	Transactions   []Transaction   `json:"transactions,omitempty"`
	StockMovements []StockMovement `json:"stockMovements,omitempty"`
	StockItems     []StockItem     `json:"stockItems,omitempty"`
	Settings       *AppSettings    `json:"settings,omitempty"`
	ExportDate     time.Time       `json:"exportDate"`
	Version        string          `json:"version"`
}
