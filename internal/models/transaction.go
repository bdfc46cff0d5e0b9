package models

import "time"

type TransactionType string

const (
	TransactionGiven    TransactionType = "given"    // kartela verildi
	TransactionReturned TransactionType = "returned" // kartela iade edildi
	TransactionSold     TransactionType = "sold"     // satış
)

type Transaction struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	ProductID  string          `json:"productId"`
	Type       TransactionType `json:"type"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy,omitempty"`
}

// TransactionWithDetails: müşteri ve ürün bilgisiyle birleştirilmiş işlem.
// Müşterisi veya ürünü silinmiş işlemler bu görünüme hiç girmez.
type TransactionWithDetails struct {
	Transaction
	Customer Customer `json:"customer"`
	Product  Product  `json:"product"`
}
